package registry

import (
	"context"
	"strings"
	"time"

	"github.com/amirasaad/aliasregistry/pkg/cache"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/dto"
	"github.com/amirasaad/aliasregistry/pkg/repository"
)

// Search resolves a record by alias or by owner address.
func (s *Service) Search(ctx context.Context, searchType, value string) (out *dto.SearchResponse, err error) {
	defer s.observe("search", time.Now(), &err)
	logger := s.logger.With("searchType", searchType, "value", value)

	st, err := alias.ParseSearchType(searchType)
	if err != nil {
		logger.Error("Search failed: bad search type", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		_, err := loadConfig(ctx, uow)
		return err
	})
	if err != nil {
		logger.Error("Search failed: config error", "error", err)
		return nil, err
	}

	var rec *alias.Record
	switch st {
	case alias.SearchByAlias:
		rec, err = s.byAlias(ctx, alias.Normalize(value))
	case alias.SearchByAddress:
		rec, err = s.byOwner(ctx, alias.Identity(strings.TrimSpace(value)))
	}
	if err != nil {
		logger.Error("Search failed: lookup error", "error", err)
		return nil, err
	}
	if rec == nil {
		return nil, alias.ErrAliasNotFound
	}
	return &dto.SearchResponse{
		Type:       string(st),
		Attributes: dto.NewAliasAttributes(rec),
	}, nil
}

// Show resolves a record by alias. It is equivalent to a search by alias.
func (s *Service) Show(ctx context.Context, name string) (*dto.SearchResponse, error) {
	return s.Search(ctx, string(alias.SearchByAlias), name)
}

func (s *Service) byAlias(ctx context.Context, name string) (*alias.Record, error) {
	if name == "" {
		return nil, nil
	}
	return s.loader.Get(ctx, cache.AliasKey(name), func(ctx context.Context) (rec *alias.Record, err error) {
		err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			aliases, err := uow.AliasIndex()
			if err != nil {
				return err
			}
			rec, err = aliases.Get(ctx, name)
			return err
		})
		return rec, err
	})
}

func (s *Service) byOwner(ctx context.Context, owner alias.Identity) (*alias.Record, error) {
	if owner.IsZero() {
		return nil, nil
	}
	return s.loader.Get(ctx, cache.OwnerKey(owner), func(ctx context.Context) (rec *alias.Record, err error) {
		err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			owners, err := uow.OwnerIndex()
			if err != nil {
				return err
			}
			name, ok, err := owners.Get(ctx, owner)
			if err != nil || !ok {
				return err
			}
			aliases, err := uow.AliasIndex()
			if err != nil {
				return err
			}
			rec, err = aliases.Get(ctx, name)
			return err
		})
		return rec, err
	})
}
