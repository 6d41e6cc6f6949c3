package dock

import (
	"errors"

	"github.com/bnema/tabdock/internal/application/usecase"
	"github.com/bnema/tabdock/internal/domain/entity"
)

// removeContainer takes an empty pane out of its split. A persistent pane
// hands its role to a same-scope sibling first.
func (d *Dock) removeContainer(p *Pane) {
	if !d.registered(p) {
		return
	}
	_, err := d.splits.RemoveContainer(p.ctx, usecase.RemoveInput{
		Container: p.container,
		OnSibling: func(sibling *entity.TabContainer) {
			sp := d.byContainer[sibling]
			if sp == nil {
				return
			}
			if p.onSibling != nil {
				p.onSibling(sp)
			}
			sp.onSibling = p.onSibling
		},
	})
	switch {
	case errors.Is(err, usecase.ErrNoParentSplit), errors.Is(err, usecase.ErrNoSibling):
		p.logger.Debug().Err(err).Msg("empty pane kept")
		return
	case err != nil:
		p.logger.Warn().Err(err).Msg("remove empty pane failed")
		return
	}
	d.unregister(p)
}
