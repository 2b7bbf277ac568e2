package models

// HealthPackage is a checkup package offered on the platform.
type HealthPackage struct {
	PackageID        string   `json:"packageId,omitempty"`
	PackageTitle     string   `json:"packageTitle" binding:"required"`
	Category         string   `json:"category" binding:"required"`
	PackagePrice     float64  `json:"packagePrice" binding:"required"`
	InstructionsList []string `json:"instructionsList"`
	TestList         []string `json:"testList"`
}
