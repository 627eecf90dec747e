package handler

// successResponse is the canonical success envelope: {"success":true,"data":...}.
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses: {"success":false,"error":"<message>"}.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// --- Request types ---

// signInRequest carries the identity assertion relayed from the external
// provider's callback. No field is validator-required: the credential gate
// itself denies an empty email rather than faulting on it.
type signInRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// submitComplaintRequest deliberately has no studentName/studentEmail fields;
// those are bound from the session, so a spoofed value in the body is simply
// never read.
type submitComplaintRequest struct {
	RoomNumber  string `json:"roomNumber"  validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Description string `json:"description" validate:"required,max=500"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type upsertCoolerRequest struct {
	Name string `json:"name" validate:"required"`
	TDS  string `json:"tds"  validate:"required"`
}
