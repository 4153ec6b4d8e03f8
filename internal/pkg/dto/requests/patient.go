package requests

// UpdatePatient carries only the fields the caller wants to change.
type UpdatePatient struct {
	Surname        *string `json:"surname" validate:"omitnil,min=1,max=100"`
	OtherNames     *string `json:"otherNames" validate:"omitnil,min=1,max=200"`
	DateOfBirth    *string `json:"dateOfBirth" validate:"omitnil,datetime=2006-01-02,not_future"`
	Age            *int    `json:"age" validate:"omitnil,gte=0,lte=150"`
	Occupation     *string `json:"occupation" validate:"omitnil,min=1,max=100"`
	MaritalStatus  *string `json:"maritalStatus" validate:"omitnil,marital_status"`
	ContactAddress *string `json:"contactAddress" validate:"omitnil,min=1,max=500"`
	PhoneNumber    *string `json:"phoneNumber" validate:"omitnil,phone_number"`
	EmailAddress   *string `json:"emailAddress" validate:"omitnil,email"`
	Ethnicity      *string `json:"ethnicity" validate:"omitnil,min=1,max=100"`
	Gender         *string `json:"gender" validate:"omitnil,gender"`
}
