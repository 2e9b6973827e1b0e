package registry

import (
	"context"
	"time"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/events"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/amirasaad/aliasregistry/pkg/dto"
	"github.com/amirasaad/aliasregistry/pkg/repository"
)

// CreateCommand is a direct creation request.
type CreateCommand struct {
	Owner     alias.Identity
	Alias     string
	AvatarURL *string
}

// Create binds an alias to the acting owner. It is rejected while the payment
// gate is configured; gated registries create aliases through Receive.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (out *dto.Answer, err error) {
	defer s.observe("create", time.Now(), &err)
	logger := s.logger.With("owner", cmd.Owner, "alias", cmd.Alias)
	logger.Info("Create started")

	var rec *alias.Record
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		cfg, err := loadConfig(ctx, uow)
		if err != nil {
			logger.Error("Create failed: config error", "error", err)
			return err
		}
		if cfg.Gated() {
			return payment.ErrPaymentRequired
		}
		rec, err = createRecord(ctx, uow, cfg, cmd)
		return err
	})
	if err != nil {
		logger.Error("Create failed: transaction error", "error", err)
		return nil, err
	}

	s.invalidate(ctx, logger, rec)
	s.emit(ctx, logger, events.NewAliasCreated(rec, false))

	attrs := dto.NewAliasAttributes(rec)
	logger.Info("Create successful", "normalized", rec.Alias)
	return &dto.Answer{Status: dto.StatusSuccess, Alias: &attrs}, nil
}

// Receive handles a "funds received" notification from the token contract.
// A verified payment creates the alias for the paying account and forwards
// the full amount to the payment destination.
func (s *Service) Receive(ctx context.Context, n payment.Notification) (out *dto.Answer, err error) {
	defer s.observe("receive", time.Now(), &err)
	logger := s.logger.With("sender", n.Sender, "from", n.From, "amount", n.Amount.String())
	logger.Info("Receive started")

	var (
		rec      *alias.Record
		transfer payment.Transfer
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		cfg, err := loadConfig(ctx, uow)
		if err != nil {
			logger.Error("Receive failed: config error", "error", err)
			return err
		}
		req, err := payment.Verify(cfg, n)
		if err != nil {
			logger.Error("Receive failed: payment rejected", "error", err)
			return err
		}
		rec, err = createRecord(ctx, uow, cfg, CreateCommand{
			Owner:     n.From,
			Alias:     req.Alias,
			AvatarURL: req.AvatarURL,
		})
		if err != nil {
			return err
		}
		transfer = payment.Forward(cfg, n, rec.Alias)
		return nil
	})
	if err != nil {
		logger.Error("Receive failed: transaction error", "error", err)
		return nil, err
	}

	s.invalidate(ctx, logger, rec)
	s.emit(ctx, logger, events.NewAliasCreated(rec, true))
	if s.token != nil {
		if terr := s.token.Transfer(ctx, transfer); terr != nil {
			logger.Warn("Receive: forward transfer not dispatched", "error", terr)
		}
	}

	attrs := dto.NewAliasAttributes(rec)
	logger.Info("Receive successful", "alias", rec.Alias)
	return &dto.Answer{
		Status:   dto.StatusSuccess,
		Alias:    &attrs,
		Messages: []payment.Transfer{transfer},
	}, nil
}

// Destroy removes an alias. Only its owner may destroy it.
func (s *Service) Destroy(ctx context.Context, caller alias.Identity, name string) (out *dto.Answer, err error) {
	defer s.observe("destroy", time.Now(), &err)
	logger := s.logger.With("caller", caller, "alias", name)
	logger.Info("Destroy started")

	var rec *alias.Record
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := loadConfig(ctx, uow); err != nil {
			return err
		}
		aliases, err := uow.AliasIndex()
		if err != nil {
			logger.Error("Destroy failed: AliasIndex error", "error", err)
			return err
		}
		owners, err := uow.OwnerIndex()
		if err != nil {
			logger.Error("Destroy failed: OwnerIndex error", "error", err)
			return err
		}
		rec, err = aliases.Get(ctx, alias.Normalize(name))
		if err != nil {
			return err
		}
		if rec == nil {
			return alias.ErrAliasNotFound
		}
		if err := alias.Authorize(caller, rec.Owner); err != nil {
			return err
		}
		if err := aliases.Remove(ctx, rec.Alias); err != nil {
			return err
		}
		return owners.Remove(ctx, rec.Owner)
	})
	if err != nil {
		logger.Error("Destroy failed: transaction error", "error", err)
		return nil, err
	}

	s.invalidate(ctx, logger, rec)
	s.emit(ctx, logger, events.NewAliasDestroyed(rec))

	attrs := dto.NewAliasAttributes(rec)
	logger.Info("Destroy successful")
	return &dto.Answer{Status: dto.StatusSuccess, Alias: &attrs}, nil
}

// createRecord runs the shared creation checks and writes both indexes. All
// checks complete before the first write.
func createRecord(
	ctx context.Context,
	uow repository.UnitOfWork,
	cfg *alias.Config,
	cmd CreateCommand,
) (*alias.Record, error) {
	rec, err := alias.NewRecord(cmd.Alias, cmd.Owner, cmd.AvatarURL, cfg)
	if err != nil {
		return nil, err
	}
	aliases, err := uow.AliasIndex()
	if err != nil {
		return nil, err
	}
	owners, err := uow.OwnerIndex()
	if err != nil {
		return nil, err
	}

	existing, err := aliases.Get(ctx, rec.Alias)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alias.ErrAliasTaken
	}
	if _, ok, err := owners.Get(ctx, rec.Owner); err != nil {
		return nil, err
	} else if ok {
		return nil, alias.ErrOwnerHasAlias
	}

	if err := aliases.Set(ctx, rec); err != nil {
		return nil, err
	}
	if err := owners.Set(ctx, rec.Owner, rec.Alias); err != nil {
		return nil, err
	}
	return rec, nil
}
