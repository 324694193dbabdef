package services

import (
	"errors"

	"gorm.io/gorm"

	"hotel-master/models"
)

// AccountService wraps *gorm.DB with the account business rules: registration,
// credential checks, and the admin-side user management with its cascades.
type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Phone    string
}

// Register creates a guest account. The username is pre-checked like the
// source does; email uniqueness is left to the storage constraint and mapped
// to ErrEmailTaken when it fires.
func (s *AccountService) Register(in RegisterInput) (*models.Account, error) {
	var count int64
	if err := s.DB.Model(&models.Account{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	account := &models.Account{
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
		Phone:    in.Phone,
		Role:     models.RoleGuest,
	}
	if err := s.DB.Create(account).Error; err != nil {
		if isDuplicateKey(err) {
			// The username was checked above, so a constraint hit here is the
			// email index unless a concurrent register won the race.
			var again int64
			s.DB.Model(&models.Account{}).Where("username = ?", in.Username).Count(&again)
			if again > 0 {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return account, nil
}

// Authenticate matches username and password exactly against the stored row.
// Credentials are compared verbatim; see the SECURITY note in README.md.
func (s *AccountService) Authenticate(username, password string) (*models.Account, error) {
	var account models.Account
	err := s.DB.Where("username = ? AND password = ?", username, password).First(&account).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &account, nil
}

func (s *AccountService) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.DB.First(&account, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &account, nil
}

func (s *AccountService) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	err := s.DB.Find(&accounts).Error
	return accounts, err
}

// Delete removes an account and everything it owns in one transaction. An
// admin can never delete the account they are logged in as.
func (s *AccountService) Delete(id uint, actingID uint) error {
	if id == actingID {
		return ErrSelfDeletionForbidden
	}

	var account models.Account
	if err := s.DB.First(&account, id).Error; err != nil {
		return notFoundOr(err)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
}

// HasAdmin reports whether any admin account exists; used by the bootstrap
// seeding.
func (s *AccountService) HasAdmin() (bool, error) {
	var account models.Account
	err := s.DB.Where("role = ?", models.RoleAdmin).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
