package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/google/uuid"
)

type accountService struct {
	BaseService
}

// NewAccountService creates a new AccountService with the given dependencies.
func NewAccountService(base BaseService) *accountService {
	return &accountService{BaseService: base}
}

func (s *accountService) CreateCategory(ctx context.Context, businessID string, req dto.CreateCategoryRequest, userID string) (*domain.AccountCategory, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("invalid category type %q", req.Type)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("category name is required")
	}

	category := domain.AccountCategory{
		CategoryID:  uuid.NewString(),
		BusinessID:  businessID,
		Name:        name,
		Type:        req.Type,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.repos.AccountRepo.SaveCategory(ctx, category); err != nil {
		s.logFailure(ctx, err, "Failed to save account category", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Account category created",
		slog.String("category_id", category.CategoryID), slog.String("type", string(category.Type)))
	return &category, nil
}

func (s *accountService) ListCategories(ctx context.Context, businessID string) ([]domain.AccountCategory, error) {
	categories, err := s.repos.AccountRepo.ListCategories(ctx, businessID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list account categories", slog.String("business_id", businessID))
		return nil, err
	}
	return categories, nil
}

func (s *accountService) GetAccount(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	account, err := s.repos.AccountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, businessID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	filter := portsrepo.AccountFilter{
		ActiveOnly: params.ActiveOnly,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if params.CategoryType != "" {
		ct := domain.AccountCategoryType(params.CategoryType)
		if !ct.IsValid() {
			return nil, apperrors.NewValidationError("invalid category type %q", params.CategoryType)
		}
		filter.CategoryType = &ct
	}

	accounts, err := s.repos.AccountRepo.ListAccounts(ctx, businessID, filter)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list accounts", slog.String("business_id", businessID))
		return nil, err
	}
	return accounts, nil
}

// CreateAccount opens an account under an existing category. The account
// inherits the category's type, which fixes its sign convention for good.
func (s *accountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, apperrors.NewValidationError("account code and name are required")
	}

	category, err := s.repos.AccountRepo.FindCategoryByID(ctx, businessID, req.CategoryID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find account category", slog.String("category_id", req.CategoryID))
		return nil, err
	}

	account := domain.Account{
		AccountID:    uuid.NewString(),
		BusinessID:   businessID,
		CategoryID:   category.CategoryID,
		CategoryType: category.Type,
		Code:         code,
		Name:         name,
		Description:  req.Description,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(userID, s.now()),
	}
	if err := s.repos.AccountRepo.SaveAccount(ctx, account); err != nil {
		s.logFailure(ctx, err, "Failed to save account", slog.String("code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", code))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, businessID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	return s.modify(ctx, businessID, accountID, userID, "Failed to update account", func(a *domain.Account) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return apperrors.NewValidationError("account name cannot be empty")
			}
			a.Name = name
		}
		if req.Description != nil {
			a.Description = *req.Description
		}
		return nil
	})
}

func (s *accountService) DeactivateAccount(ctx context.Context, businessID string, accountID string, userID string) (*domain.Account, error) {
	return s.modify(ctx, businessID, accountID, userID, "Failed to deactivate account", func(a *domain.Account) error {
		if !a.IsActive {
			return apperrors.NewInvalidStateError("account %s is already inactive", a.Code)
		}
		a.IsActive = false
		return nil
	})
}

func (s *accountService) ActivateAccount(ctx context.Context, businessID string, accountID string, userID string) (*domain.Account, error) {
	return s.modify(ctx, businessID, accountID, userID, "Failed to activate account", func(a *domain.Account) error {
		if a.IsActive {
			return apperrors.NewInvalidStateError("account %s is already active", a.Code)
		}
		a.IsActive = true
		return nil
	})
}

// modify loads the account, applies change and stores the result in one transaction.
func (s *accountService) modify(ctx context.Context, businessID, accountID, userID, failMsg string, change func(*domain.Account) error) (*domain.Account, error) {
	var updated *domain.Account
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		account, err := repos.AccountRepo.FindAccountByID(ctx, businessID, accountID)
		if err != nil {
			return err
		}
		if err := change(account); err != nil {
			return err
		}
		account.Touch(userID, s.now())
		if err := repos.AccountRepo.UpdateAccount(ctx, *account); err != nil {
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, failMsg, slog.String("account_id", accountID))
		return nil, err
	}
	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID), slog.Bool("is_active", updated.IsActive))
	return updated, nil
}

// DeleteAccount removes an account that no journal item, in any status, refers to.
func (s *accountService) DeleteAccount(ctx context.Context, businessID string, accountID string) error {
	err := s.txm.WithTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		account, err := repos.AccountRepo.FindAccountByID(ctx, businessID, accountID)
		if err != nil {
			return err
		}
		used, err := repos.LedgerRepo.AccountHasItems(ctx, businessID, accountID)
		if err != nil {
			return err
		}
		if used {
			return apperrors.NewInvalidStateError("account %s has journal items; deactivate it instead", account.Code)
		}
		return repos.AccountRepo.DeleteAccount(ctx, businessID, accountID)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
