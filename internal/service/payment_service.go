// FILE: internal/service/payment_service.go
package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"os"
	"time"

	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/entity"
	"cholestofit-be/internal/pkg/logger"
	"cholestofit-be/internal/pkg/mailer"
	"cholestofit-be/internal/repository/specification"
	"cholestofit-be/internal/repository/unitofwork"
	"cholestofit-be/pkg/billing"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	CreateTopUp(ctx context.Context, userId uuid.UUID, req *dto.TopUpCheckoutRequest) (*dto.TopUpCheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	GetTopUpHistory(ctx context.Context, userId uuid.UUID) (*dto.TopUpHistoryResponse, error)
}

type paymentService struct {
	uowFactory   unitofwork.RepositoryFactory
	catalog      billing.Catalog
	engineOpts   []billing.Option
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	catalog billing.Catalog,
	emailService mailer.IEmailService,
	log logger.ILogger,
	engineOpts ...billing.Option,
) IPaymentService {
	return &paymentService{
		uowFactory:   uowFactory,
		catalog:      catalog,
		engineOpts:   engineOpts,
		emailService: emailService,
		log:          log,
	}
}

func (s *paymentService) CreateTopUp(ctx context.Context, userId uuid.UUID, req *dto.TopUpCheckoutRequest) (*dto.TopUpCheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Reject amounts the settlement deposit would refuse, before any money
	// moves. Otherwise Midtrans collects a payment no webhook can credit.
	engine := billing.NewEngine(s.catalog, &uowAccountStore{uow: uow}, s.engineOpts...)
	if err := engine.ValidateDepositAmount(req.AmountCents); err != nil {
		return nil, err
	}

	user, err := loadAccount(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	tx := &entity.TopUpTransaction{
		Id:          uuid.New(),
		UserId:      userId,
		AmountCents: req.AmountCents,
		Status:      entity.TopUpStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	tx.OrderId = fmt.Sprintf("topup-%s", tx.Id)

	if err := uow.BillingRepository().CreateTopUp(ctx, tx); err != nil {
		return nil, err
	}

	// -- Midtrans Logic (external call after the row is persisted) --
	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PROD") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/billing?topup=success", frontendURL)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  tx.OrderId,
			GrossAmt: req.AmountCents,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "balance-topup",
				Price: req.AmountCents,
				Qty:   1,
				Name:  fmt.Sprintf("CholestoFit balance top-up ($%s)", billing.FormatCents(req.AmountCents)),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &dto.TopUpCheckoutResponse{
		TransactionId:   tx.Id,
		OrderId:         tx.OrderId,
		SnapRedirectUrl: snapResp.RedirectURL,
		SnapToken:       snapResp.Token,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	s.log.Info("payment", "Processing Midtrans notification", map[string]interface{}{
		"order_id": req.OrderId,
		"status":   req.TransactionStatus,
	})

	// Signature validation
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return errors.New("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))

	if req.SignatureKey != expectedSignature {
		s.log.Warn("payment", "Webhook signature mismatch", map[string]interface{}{"order_id": req.OrderId})
		return errors.New("invalid signature")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	tx, err := uow.BillingRepository().FindOneTopUp(ctx, specification.ByOrderId{OrderId: req.OrderId})
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.New("top-up transaction not found")
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		// Settlement webhooks may be retried; credit only once.
		if tx.Status == entity.TopUpStatusSettled {
			return nil
		}

		user, err := loadAccount(ctx, uow, tx.UserId)
		if err != nil {
			return err
		}

		engine := billing.NewEngine(s.catalog, &uowAccountStore{uow: uow}, s.engineOpts...)
		if err := engine.Deposit(ctx, user, tx.AmountCents); err != nil {
			return err
		}

		tx.Status = entity.TopUpStatusSettled
		if req.TransactionId != "" {
			tx.MidtransTransactionId = &req.TransactionId
		}
		tx.UpdatedAt = time.Now()
		if err := uow.BillingRepository().UpdateTopUp(ctx, tx); err != nil {
			return err
		}

		if err := uow.Commit(); err != nil {
			return err
		}

		go func(email, amount, orderId string) {
			if mailErr := s.emailService.SendTopUpReceipt(email, amount, orderId); mailErr != nil {
				fmt.Printf("Error sending top-up receipt: %v\n", mailErr)
			}
		}(user.Email, billing.FormatCents(tx.AmountCents), tx.OrderId)

		return nil

	case "deny", "cancel", "expire":
		if tx.Status == entity.TopUpStatusFailed {
			return nil
		}
		tx.Status = entity.TopUpStatusFailed
		tx.UpdatedAt = time.Now()
		if err := uow.BillingRepository().UpdateTopUp(ctx, tx); err != nil {
			return err
		}
		return uow.Commit()

	case "pending":
		return nil

	default:
		s.log.Warn("payment", "Unknown transaction status, no action taken", map[string]interface{}{
			"order_id": req.OrderId,
			"status":   req.TransactionStatus,
		})
		return nil
	}
}

func (s *paymentService) GetTopUpHistory(ctx context.Context, userId uuid.UUID) (*dto.TopUpHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.BillingRepository().FindAllTopUps(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.TopUpHistoryResponse{Transactions: make([]dto.TopUpTransactionDTO, 0, len(rows))}
	for _, row := range rows {
		res.Transactions = append(res.Transactions, dto.TopUpTransactionDTO{
			Id:          row.Id,
			OrderId:     row.OrderId,
			AmountCents: row.AmountCents,
			Status:      string(row.Status),
			CreatedAt:   row.CreatedAt,
		})
	}
	return res, nil
}
