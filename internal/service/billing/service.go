package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medisuite/hospital-api/internal/email"
	"github.com/medisuite/hospital-api/internal/model"
	"github.com/medisuite/hospital-api/internal/repository"
	apperrors "github.com/medisuite/hospital-api/pkg/errors"
	"github.com/medisuite/hospital-api/pkg/metrics"
)

// Service is the billing engine: it derives a bill's amount from its
// line items at creation and reconciles partial updates, keeping the
// payment date coupled to the payment status.
type Service struct {
	repo     repository.BillRepository
	patients repository.PatientRepository
	mailer   email.Service
	metrics  *metrics.Metrics
}

func NewService(repo repository.BillRepository, patients repository.PatientRepository, mailer email.Service, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		mailer:   mailer,
		metrics:  m,
	}
}

func (s *Service) ListBills(ctx context.Context) ([]*model.Bill, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBill(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) DeleteBill(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// CreateBill filters the submitted line items, derives the amount from
// the survivors and persists the bill.
func (s *Service) CreateBill(ctx context.Context, req *model.CreateBillRequest) (*model.Bill, error) {
	if req.Patient == nil || *req.Patient == uuid.Nil {
		return nil, apperrors.Validation("patient is required")
	}

	items, amount := filterItems(req.Items)
	if len(items) == 0 {
		return nil, apperrors.Validation("at least one valid bill item is required")
	}
	if amount <= 0 {
		return nil, apperrors.Validation("amount must be greater than 0")
	}

	status := req.PaymentStatus
	if status == "" {
		status = model.PaymentStatusPending
	}
	if !status.Valid() {
		return nil, apperrors.Validation("invalid payment status")
	}

	var paymentDate *time.Time
	if req.PaymentDate != "" {
		parsed, err := parseDate(req.PaymentDate)
		if err != nil {
			return nil, err
		}
		paymentDate = parsed
	} else if status == model.PaymentStatusPaid {
		now := time.Now()
		paymentDate = &now
	}

	bill := &model.Bill{
		Base:          model.Base{ID: uuid.New()},
		PatientID:     *req.Patient,
		AppointmentID: req.Appointment,
		Amount:        amount,
		Items:         items,
		PaymentStatus: status,
		PaymentDate:   paymentDate,
	}

	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.BillsCreated.Inc()
	}
	return bill, nil
}

// UpdateBill merges a partial payload into the stored bill. Fields
// absent from the payload are left exactly as they were. A supplied
// amount is not reconciled against stored items; the two may diverge
// after a direct amount update.
func (s *Service) UpdateBill(ctx context.Context, id uuid.UUID, req *model.UpdateBillRequest) (*model.Bill, error) {
	bill, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, apperrors.Validation("amount must be greater than 0")
		}
		bill.Amount = *req.Amount
	}

	if req.Items != nil {
		if len(*req.Items) == 0 {
			return nil, apperrors.Validation("at least one bill item is required")
		}
		bill.Items = convertItems(*req.Items)
	}

	wasPaid := bill.PaymentStatus == model.PaymentStatusPaid

	if req.PaymentStatus != nil {
		if !req.PaymentStatus.Valid() {
			return nil, apperrors.Validation("invalid payment status")
		}
		bill.PaymentStatus = *req.PaymentStatus

		if *req.PaymentStatus == model.PaymentStatusPaid && (req.PaymentDate == nil || *req.PaymentDate == "") {
			now := time.Now()
			bill.PaymentDate = &now
		} else if req.PaymentDate != nil && *req.PaymentDate != "" {
			parsed, err := parseDate(*req.PaymentDate)
			if err != nil {
				return nil, err
			}
			bill.PaymentDate = parsed
		}
	}

	// A payment date supplied on its own wins over the coupling above:
	// a non-empty value is stored, an explicit empty one clears the
	// stored date.
	if req.PaymentDate != nil {
		if *req.PaymentDate == "" {
			bill.PaymentDate = nil
		} else {
			parsed, err := parseDate(*req.PaymentDate)
			if err != nil {
				return nil, err
			}
			bill.PaymentDate = parsed
		}
	}

	if req.Patient != nil {
		bill.PatientID = *req.Patient
	}

	if req.Appointment != nil {
		if *req.Appointment == "" {
			bill.AppointmentID = nil
		} else {
			appointmentID, err := uuid.Parse(*req.Appointment)
			if err != nil {
				return nil, apperrors.Validation("invalid appointment ID")
			}
			bill.AppointmentID = &appointmentID
		}
	}

	if err := s.repo.Update(ctx, bill); err != nil {
		return nil, err
	}

	if !wasPaid && bill.PaymentStatus == model.PaymentStatusPaid {
		if s.metrics != nil {
			s.metrics.BillsPaid.Inc()
		}
		s.sendReceipt(bill)
	}

	return bill, nil
}

// filterItems keeps items with a non-empty trimmed description, a
// positive quantity and a non-negative price, and returns the sum of
// quantity times price over the survivors. Non-numeric quantity and
// price values count as zero.
func filterItems(inputs []model.BillItemInput) (model.BillItems, float64) {
	var items model.BillItems
	var amount float64
	for _, in := range inputs {
		desc := strings.TrimSpace(in.Description)
		quantity := model.Coerce(in.Quantity)
		price := model.Coerce(in.Price)
		if desc == "" || quantity <= 0 || price < 0 {
			continue
		}
		items = append(items, model.BillItem{
			Description: desc,
			Quantity:    quantity,
			Price:       price,
		})
		amount += quantity * price
	}
	return items, amount
}

// convertItems maps raw update items onto stored items without
// filtering; update payloads store what the client sent.
func convertItems(inputs []model.BillItemInput) model.BillItems {
	items := make(model.BillItems, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, model.BillItem{
			Description: in.Description,
			Quantity:    model.Coerce(in.Quantity),
			Price:       model.Coerce(in.Price),
		})
	}
	return items
}

func parseDate(s string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.Validation("invalid payment date")
}

// sendReceipt emails the bill's patient in the background. Failures
// are logged and never surfaced to the caller.
func (s *Service) sendReceipt(bill *model.Bill) {
	b := *bill
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		patient, err := s.patients.Get(ctx, b.PatientID)
		if err != nil || patient.Email == "" {
			return
		}
		if err := s.mailer.SendReceipt(ctx, patient.Email, patient.Name, &b); err != nil {
			log.Warn().Err(err).Str("bill_id", b.ID.String()).Msg("failed to send payment receipt")
			return
		}
		if s.metrics != nil {
			s.metrics.ReceiptsEmailed.Inc()
		}
	}()
}
