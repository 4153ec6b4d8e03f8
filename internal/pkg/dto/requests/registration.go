package requests

type SendRegistrationLink struct {
	ContactMethod string `json:"contactMethod" validate:"required,contact_method"`
	ContactValue  string `json:"contactValue" validate:"required,max=254"`
}

type PersonalDetails struct {
	Surname        string `json:"surname" bson:"surname" validate:"required,max=100"`
	OtherNames     string `json:"otherNames" bson:"otherNames" validate:"required,max=200"`
	DateOfBirth    string `json:"dateOfBirth" bson:"dateOfBirth" validate:"required,datetime=2006-01-02,not_future"`
	Age            *int   `json:"age" bson:"age" validate:"required,gte=0,lte=150"`
	Occupation     string `json:"occupation" bson:"occupation" validate:"required,max=100"`
	MaritalStatus  string `json:"maritalStatus" bson:"maritalStatus" validate:"required,marital_status"`
	ContactAddress string `json:"contactAddress" bson:"contactAddress" validate:"required,max=500"`
	PhoneNumber    string `json:"phoneNumber" bson:"phoneNumber" validate:"required,phone_number"`
	EmailAddress   string `json:"emailAddress" bson:"emailAddress" validate:"required,email"`
	Ethnicity      string `json:"ethnicity" bson:"ethnicity" validate:"required,max=100"`
	Gender         string `json:"gender" bson:"gender" validate:"required,gender"`
}

type NextOfKinDetails struct {
	PersonalDetails       `bson:",inline"`
	RelationshipToPatient string `json:"relationshipToPatient" bson:"relationshipToPatient" validate:"required,max=100"`
}

type SubmitRegistration struct {
	Token     string            `json:"token" validate:"required"`
	Patient   *PersonalDetails  `json:"patient" validate:"required"`
	NextOfKin *NextOfKinDetails `json:"nextOfKin" validate:"required"`
}
