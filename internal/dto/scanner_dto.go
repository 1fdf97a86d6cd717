package dto

import "github.com/google/uuid"

type ScannerSessionResponse struct {
	Id         uuid.UUID `json:"id"`
	Mode       string    `json:"mode"`
	Facing     string    `json:"facing"`
	Started    bool      `json:"started"`
	Running    bool      `json:"running"`
	Generation uint64    `json:"generation"`
}

// DetectRequest is sent by the scanner page when the engine recognizes a
// barcode. Generation echoes the value handed out with the session so late
// detections from an already-stopped stream can be discarded.
type DetectRequest struct {
	Code       string `json:"code" validate:"required"`
	Generation uint64 `json:"generation"`
}

type SwitchModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=scan manual search new_product"`
}
