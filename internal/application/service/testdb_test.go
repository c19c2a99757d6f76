package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	domainRepo "github.com/subho2010/money-records-api/internal/domain/repository"
	infra "github.com/subho2010/money-records-api/internal/infrastructure/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires services against an in-memory database
type testEnv struct {
	db            *gorm.DB
	users         domainRepo.UserRepository
	transactions  domainRepo.TransactionRepository
	dues          domainRepo.DueRecordRepository
	receipts      domainRepo.ReceiptRepository
	verifications domainRepo.VerificationCodeRepository
	tx            domainRepo.TxManager
	locks         *UserLocks
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// In-memory sqlite: every connection gets its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.VerificationCode{},
		&entity.Transaction{},
		&entity.DueRecord{},
		&entity.Receipt{},
		&entity.ReceiptItem{},
		&entity.IdempotencyKey{},
	))

	return &testEnv{
		db:            db,
		users:         infra.NewUserRepository(db),
		transactions:  infra.NewTransactionRepository(db),
		dues:          infra.NewDueRecordRepository(db),
		receipts:      infra.NewReceiptRepository(db),
		verifications: infra.NewVerificationCodeRepository(db),
		tx:            infra.NewTxManager(db),
		locks:         NewUserLocks(),
	}
}

// createUser persists a user; complete users have a verified store profile
// and pass the financial-write gate
func (e *testEnv) createUser(t *testing.T, complete bool) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "hashed",
	}
	if complete {
		storeName := "Shop"
		storeAddress := "12 Market Road"
		storeContact := "9876543210"
		countryCode := "+91"
		user.StoreName = &storeName
		user.StoreAddress = &storeAddress
		user.StoreContact = &storeContact
		user.StoreCountryCode = &countryCode
		user.EmailVerified = true
		user.PhoneVerified = true
		user.ProfileComplete = true
	}
	require.NoError(t, e.users.Create(t.Context(), user))
	return user
}

func (e *testEnv) createNamedUser(t *testing.T, name, email, storeName string) *entity.User {
	t.Helper()

	storeAddress := "12 Market Road"
	storeContact := "9876543210"
	countryCode := "+91"
	user := &entity.User{
		Name:             name,
		Email:            email,
		Password:         "hashed",
		StoreName:        &storeName,
		StoreAddress:     &storeAddress,
		StoreContact:     &storeContact,
		StoreCountryCode: &countryCode,
		EmailVerified:    true,
		PhoneVerified:    true,
		ProfileComplete:  true,
	}
	require.NoError(t, e.users.Create(t.Context(), user))
	return user
}
