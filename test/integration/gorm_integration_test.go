package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/repository/specification"
	"cholestofit-be/internal/repository/unitofwork"
	"cholestofit-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.BillingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Health Repositories", func(t *testing.T) {
		ctx := context.Background()
		_, err := uow.BloodPressureRepository().Count(ctx)
		assert.NoError(t, err)
		_, err = uow.LipidPanelRepository().Count(ctx)
		assert.NoError(t, err)
		_, err = uow.NutritionRepository().Count(ctx)
		assert.NoError(t, err)
	})

	t.Run("Check Transactional TopUp Settlement", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     entity.UserRoleUser,
			Status:   entity.UserStatusActive,
			Plan:     "free",
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		// Transaction Test: create a top-up, settle it and credit the
		// balance in one transaction.
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		topUp := &entity.TopUpTransaction{
			Id:          uuid.New(),
			UserId:      user.Id,
			OrderId:     "topup-" + uuid.New().String(),
			AmountCents: 500,
			Status:      entity.TopUpStatusPending,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		err = uow.BillingRepository().CreateTopUp(ctx, topUp)
		assert.NoError(t, err)

		topUp.Status = entity.TopUpStatusSettled
		err = uow.BillingRepository().UpdateTopUp(ctx, topUp)
		assert.NoError(t, err)

		user.BalanceCents += topUp.AmountCents
		err = uow.UserRepository().Update(ctx, user)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Verify the settled row is findable by order id
		found, err := uow.BillingRepository().FindOneTopUp(ctx, specification.ByOrderId{OrderId: topUp.OrderId})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, entity.TopUpStatusSettled, found.Status)
		}

		t.Log("Successfully settled TopUp in Transaction")
	})
}
