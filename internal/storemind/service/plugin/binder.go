package plugin

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/retailmesh/storemind/pkg/logger"
)

// Binder attaches provider controller modules to the routing layer.
// Each distinct module name is mounted exactly once, even when several
// providers share the module; a shared module's registrar installs every
// route the module owns. Binding must happen before the HTTP server
// starts accepting requests — that precondition is the caller's, not
// checked here.
type Binder struct{}

// NewBinder creates a Binder.
func NewBinder() *Binder {
	return &Binder{}
}

// Bind walks the providers in order and mounts each controller module
// under the owning provider's route prefix. Providers without a
// controller are skipped (a provider may be tool-only); a module whose
// resolution or registration fails is logged and skipped without
// blocking the remaining providers. Returns the number of modules bound.
func (b *Binder) Bind(providers []Provider, root *gin.RouterGroup) int {
	bound := make(map[string]bool)

	for _, p := range providers {
		meta := p.Metadata()

		ctrl, err := resolveController(p)
		if err != nil {
			logger.Warn("[Plugin] provider %q controller resolution failed, skipping: %v", meta.ID, err)
			continue
		}
		if ctrl == nil {
			continue
		}
		if ctrl.Name == "" || ctrl.Register == nil {
			logger.Warn("[Plugin] provider %q exposes an incomplete controller module, skipping", meta.ID)
			continue
		}
		if bound[ctrl.Name] {
			continue
		}

		group := root
		if prefix := strings.Trim(meta.RoutePrefix, "/"); prefix != "" {
			group = root.Group("/" + prefix)
		}
		if err := registerModule(ctrl, group); err != nil {
			logger.Warn("[Plugin] controller module %q registration failed, skipping: %v", ctrl.Name, err)
			continue
		}

		bound[ctrl.Name] = true
		logger.Info("[Plugin] bound controller module %q (provider %q, prefix %q)",
			ctrl.Name, meta.ID, meta.RoutePrefix)
	}

	return len(bound)
}

func resolveController(p Provider) (ctrl *ControllerModule, err error) {
	defer func() {
		if r := recover(); r != nil {
			ctrl = nil
			err = fmt.Errorf("Controller panicked: %v", r)
		}
	}()
	return p.Controller(), nil
}

func registerModule(ctrl *ControllerModule, group *gin.RouterGroup) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Register panicked: %v", r)
		}
	}()
	ctrl.Register(group)
	return nil
}
