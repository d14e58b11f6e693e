package admin

// Requests

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Responses

type LoginResponse struct {
	Token string `json:"token"`
}

type StatsResponse struct {
	TotalUsers      int             `json:"totalUsers"`
	TotalOrders     int             `json:"totalOrders"`
	TotalBookings   int             `json:"totalBookings"`
	TotalAdoptions  int             `json:"totalAdoptions"`
	TotalRevenue    float64         `json:"totalRevenue"`
	PendingOrders   int             `json:"pendingOrders"`
	PendingBookings int             `json:"pendingBookings"`
	RecentOrders    []RecentOrder   `json:"recentOrders"`
	RecentBookings  []RecentBooking `json:"recentBookings"`
}

type RecentOrder struct {
	OrderNumber string  `json:"orderNumber"`
	UserName    string  `json:"userName"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
}

type RecentBooking struct {
	ServiceID   string `json:"serviceID"`
	UserName    string `json:"userName"`
	BookingDate string `json:"bookingDate"`
	Status      string `json:"status"`
}
