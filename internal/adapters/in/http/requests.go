package http

// EnqueueRequest is the body of POST /api/v1/queue. Priority defaults to
// NORMAL when omitted.
type EnqueueRequest struct {
	ServiceOrderID int64  `json:"service_order_id"`
	Priority       string `json:"priority"`
}

// StartDiagnosisRequest is the body of POST /api/v1/queue/:id/start-diagnosis.
type StartDiagnosisRequest struct {
	MechanicID int64 `json:"mechanic_id"`
}

// CompleteDiagnosisRequest is the body of POST /api/v1/queue/:id/complete-diagnosis.
type CompleteDiagnosisRequest struct {
	DiagnosisNotes string `json:"diagnosis_notes"`
}

// StartRepairRequest is the body of POST /api/v1/queue/:id/start-repair.
// A nil mechanic id keeps the mechanic assigned during diagnosis.
type StartRepairRequest struct {
	MechanicID *int64 `json:"mechanic_id"`
}

// CompleteRepairRequest is the body of POST /api/v1/queue/:id/complete-repair.
type CompleteRepairRequest struct {
	RepairNotes string `json:"repair_notes"`
}

// ChangePriorityRequest is the body of PATCH /api/v1/queue/:id/priority.
type ChangePriorityRequest struct {
	Priority string `json:"priority"`
}

// ErrorResponse is the uniform error body for all failure responses.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
