package model

// DashboardStats is the aggregate view backing the dashboard, derived
// by a full scan on every request.
type DashboardStats struct {
	TotalPatients     int64   `json:"totalPatients"`
	TotalDoctors      int64   `json:"totalDoctors"`
	TotalAppointments int64   `json:"totalAppointments"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
