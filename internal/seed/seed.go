// Package seed inserts the demo accounts and starter content
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/assetmagnets/platform/internal/defaults"
	"github.com/assetmagnets/platform/internal/models"
)

// UserStore is the interface that wraps the user table methods needed for seeding
type UserStore interface {
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method Create inserts a new user.
	//
	// If some error occurs during insert, the error will be returned.
	Create(ctx context.Context, user *models.User) error
}

// TableStore is the interface that wraps the content table methods needed for seeding
type TableStore[T models.Record] interface {
	// Method Count returns the number of rows in the table.
	//
	// If some error occurs during count, the error will be returned together with 0.
	Count(ctx context.Context) (int, error)
	// Method Create inserts a new row.
	//
	// If some error occurs during insert, the error will be returned.
	Create(ctx context.Context, item T) error
}

// Stores groups the tables the seeder writes to
type Stores struct {
	Users       UserStore
	Services    TableStore[*models.Service]
	ContactInfo TableStore[*models.ContactInfo]
	FAQs        TableStore[*models.FAQ]
	Offices     TableStore[*models.GlobalOffice]
}

// Seeder inserts demo data that is missing
type Seeder struct {
	stores Stores
	logger *zap.Logger
	now    func() time.Time
	cost   int
}

// NewSeeder creates a new seeder
func NewSeeder(stores Stores, logger *zap.Logger) *Seeder {
	return &Seeder{
		stores: stores,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Second) },
		cost:   bcrypt.DefaultCost,
	}
}

// Run creates the demo accounts that do not exist yet and fills empty content tables
//
// Running it twice changes nothing.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	if err := seedTable(ctx, s, "services", s.stores.Services, defaults.Services()); err != nil {
		return err
	}
	if err := seedTable(ctx, s, "contact_info", s.stores.ContactInfo, defaults.ContactInfo()); err != nil {
		return err
	}
	if err := seedTable(ctx, s, "faqs", s.stores.FAQs, defaults.FAQs()); err != nil {
		return err
	}
	return seedTable(ctx, s, "global_offices", s.stores.Offices, defaults.Offices())
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	for _, account := range defaults.DemoAccounts() {
		exists, err := s.stores.Users.ExistsByEmail(ctx, account.Email)
		if err != nil {
			return fmt.Errorf("failed to check demo user %s: %w", account.Email, err)
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), s.cost)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}

		user := &models.User{
			Base:         models.Base{ID: uuid.NewString()},
			Email:        account.Email,
			Name:         account.Name,
			PasswordHash: string(hash),
			Role:         account.Role,
		}
		user.Touch(s.now())

		if err := s.stores.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create demo user %s: %w", account.Email, err)
		}
		s.logger.Info("demo user created", zap.String("email", account.Email), zap.String("role", string(account.Role)))
	}
	return nil
}

// seedTable inserts items only when the table is empty
func seedTable[T models.Record](ctx context.Context, s *Seeder, name string, store TableStore[T], items []T) error {
	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", name, err)
	}
	if count > 0 {
		return nil
	}

	now := s.now()
	for _, item := range items {
		base := item.Meta()
		base.ID = uuid.NewString()
		base.Touch(now)
		if err := store.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
	}
	s.logger.Info("default content seeded", zap.String("table", name), zap.Int("count", len(items)))
	return nil
}
