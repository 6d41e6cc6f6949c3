package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabdock/internal/cli/styles"
)

const (
	defaultLogsLines = 50
	followInterval   = 100 * time.Millisecond
)

var (
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the demo log",
	Long: `Show the last lines of the demo log file.

The demo owns the terminal, so it writes its logs to logging.file
(default: the XDG state directory).

Examples:
  tabdock logs            # Show the last 50 lines
  tabdock logs -n 200     # Show the last 200 lines
  tabdock logs -f         # Follow the log while the demo runs`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	path, err := a.Config.LogFile()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render("No logs yet. Run 'tabdock demo' to create them."))
		return nil
	}

	if logsFollow {
		return followLog(cmd, path, a.Theme)
	}
	return showLog(cmd.OutOrStdout(), path, logsLines, a.Theme)
}

func showLog(out io.Writer, path string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	tail, err := lastLines(file, lines)
	if err != nil {
		return err
	}
	for _, line := range tail {
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
	return nil
}

// lastLines returns up to n trailing lines of r.
func lastLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// followLog prints lines appended to path until the command context ends.
func followLog(cmd *cobra.Command, path string, theme *styles.Theme) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))

	ctx := cmd.Context()
	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("read log file: %w", err)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followInterval):
			}
			continue
		}
		fmt.Fprintln(out, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
		pending = ""
	}
}

type logEntry struct {
	Level   string `json:"level"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	switch {
	case strings.Contains(line, " ERR "):
		return theme.ErrorStyle.Render(line)
	case strings.Contains(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case strings.Contains(line, " DBG "), strings.Contains(line, " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var level string
	switch entry.Level {
	case "error":
		level = theme.ErrorStyle.Render("ERR")
	case "warn":
		level = theme.WarningStyle.Render("WRN")
	case "info":
		level = theme.Highlight.Render("INF")
	case "debug":
		level = theme.Subtle.Render("DBG")
	case "trace":
		level = theme.Subtle.Render("TRC")
	default:
		level = entry.Level
	}

	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), level, entry.Message)
}
