package booker

// Draft is the date range the user has typed into the booking form.
// Empty strings mean the field is unset.
type Draft struct {
	StartDate string
	EndDate   string
}

// BookingRequest is the body of a create-booking call. It is only built
// from a Draft that passed Validate.
type BookingRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	UserID    string `json:"userId"`
}

func newBookingRequest(d Draft, userID string) BookingRequest {
	return BookingRequest{
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		UserID:    userID,
	}
}
