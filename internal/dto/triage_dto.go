package dto

// ValidateRequest is the pre-flight scope check payload. A missing
// mainSymptom decodes to "" and simply fails the scope gate.
type ValidateRequest struct {
	MainSymptom string `json:"mainSymptom" validate:"max=2000"`
}

// ValidateResponse reports whether the symptom is in scope. Reply is only
// populated (and serialized) for the refusal case.
type ValidateResponse struct {
	Ok    bool   `json:"ok"`
	Reply string `json:"reply,omitempty"`
}

type ChatRequest struct {
	MainSymptom  string `json:"mainSymptom" validate:"max=2000"`
	RefineAnswer string `json:"refineAnswer" validate:"max=2000"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
