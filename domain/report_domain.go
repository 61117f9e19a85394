package domain

var (
	MessageSuccessGetReport = "report retrieved successfully"
	MessageFailedGetReport  = "failed to retrieve report"
)

type (
	PaymentStatsResponse struct {
		Deposits      float64 `json:"deposits"`
		Subscriptions float64 `json:"subscriptions"`
		Purchases     float64 `json:"purchases"`
		TotalIncome   float64 `json:"total_income"`
	}

	OrderStatsResponse struct {
		Total    int64 `json:"total"`
		Today    int64 `json:"today"`
		Received int64 `json:"received"`
	}

	ClassAttendanceResponse struct {
		ClassName string `json:"class_name"`
		Total     int64  `json:"total"`
		Breakfast int64  `json:"breakfast"`
		Lunch     int64  `json:"lunch"`
	}

	DishStatsResponse struct {
		DishName string `json:"dish_name"`
		Count    int64  `json:"count"`
	}

	FinancialReportResponse struct {
		Payments  PaymentStatsResponse `json:"payments"`
		Expenses  float64              `json:"expenses"`
		NetIncome float64              `json:"net_income"`
	}
)
