package constvars

const (
	URLParamToken            = "token"
	URLParamVerificationCode = "code"
	URLParamPatientID        = "id"
)
