package waitsession

import (
	"matchclient/internal/entities"
)

// Factory собирает сессии с общими зависимостями. Сессии между собой
// ничего не разделяют: у каждой свой дедлайн и свой флаг отмены.
type Factory struct {
	log        sessionLogger
	gateway    Gateway
	resolver   Resolver
	reconciler Reconciler
	cfg        Config
}

func NewFactory(
	log sessionLogger,
	gateway Gateway,
	resolver Resolver,
	reconciler Reconciler,
	cfg Config,
) *Factory {
	return &Factory{
		log:        log,
		gateway:    gateway,
		resolver:   resolver,
		reconciler: reconciler,
		cfg:        cfg,
	}
}

func (f *Factory) NewSession(role entities.Role, hints entities.IDHints) *Session {
	return NewSession(f.log, f.gateway, f.resolver, f.reconciler, f.cfg, role, hints)
}
