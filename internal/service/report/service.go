package report

import (
	"context"

	"github.com/medisuite/hospital-api/internal/model"
	"github.com/medisuite/hospital-api/internal/repository"
)

// Service derives the dashboard aggregates. Everything is recomputed
// from scratch on each call; there is no incremental maintenance.
type Service struct {
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	bills        repository.BillRepository
}

func NewService(patients repository.PatientRepository, doctors repository.DoctorRepository,
	appointments repository.AppointmentRepository, bills repository.BillRepository) *Service {
	return &Service{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		bills:        bills,
	}
}

// ComputeStats counts each collection and sums revenue over paid bills.
// Pending and Partial bills contribute nothing.
func (s *Service) ComputeStats(ctx context.Context) (*model.DashboardStats, error) {
	patientCount, err := s.patients.Count(ctx)
	if err != nil {
		return nil, err
	}
	doctorCount, err := s.doctors.Count(ctx)
	if err != nil {
		return nil, err
	}
	appointmentCount, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}

	bills, err := s.bills.List(ctx)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, bill := range bills {
		if bill.PaymentStatus == model.PaymentStatusPaid {
			revenue += bill.Amount
		}
	}

	return &model.DashboardStats{
		TotalPatients:     patientCount,
		TotalDoctors:      doctorCount,
		TotalAppointments: appointmentCount,
		TotalRevenue:      revenue,
	}, nil
}
