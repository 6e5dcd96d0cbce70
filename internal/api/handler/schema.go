package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN CLIENT"`
}

type identityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	User      identityResponse `json:"user"`
}

type registerResponse struct {
	User identityResponse `json:"user"`
}

// --- Dashboard ---

type projectResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	StartDate string    `json:"start_date"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

type stageResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Completed  bool   `json:"completed"`
}

type paymentResponse struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Date      string  `json:"date"`
	Milestone string  `json:"milestone"`
}

type adminDashboardResponse struct {
	Projects []projectResponse `json:"projects"`
	Total    int               `json:"total"`
}

// clientDashboardResponse carries the single owned project with its stages
// and payments. Project is null for the empty view. StageWeightTotal is
// informational only; stage weights are not required to sum to 100.
type clientDashboardResponse struct {
	Project          *projectResponse  `json:"project"`
	Stages           []stageResponse   `json:"stages"`
	Payments         []paymentResponse `json:"payments"`
	StageWeightTotal int               `json:"stage_weight_total"`
}

// dashboardResponse is the tagged aggregate: exactly one of admin/client is
// set, matching state.
type dashboardResponse struct {
	State  string                   `json:"state"`
	Admin  *adminDashboardResponse  `json:"admin,omitempty"`
	Client *clientDashboardResponse `json:"client,omitempty"`
}

// --- Projects / clients (admin) ---

type createProjectRequest struct {
	Name      string `json:"name"       validate:"required"`
	Location  string `json:"location"   validate:"required"`
	ClientID  string `json:"client_id"  validate:"required"`
	Status    string `json:"status"     validate:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type listClientsResponse struct {
	Data []identityResponse `json:"data"`
}

// --- Marketing one-shots ---

type bookingRequest struct {
	ClientName  string `json:"client_name"  validate:"required"`
	Phone       string `json:"phone"        validate:"required"`
	Email       string `json:"email"        validate:"omitempty,email"`
	ServiceType string `json:"service_type" validate:"required"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Message     string `json:"message"`
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type submissionResponse struct {
	Status string `json:"status"`
}
