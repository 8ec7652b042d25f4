package dto

import (
	"zentravel/internal/domains/booking/model"
)

type BookingResponse struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Title       string        `json:"title"`
	SubTitle    string        `json:"sub_title"`
	ReferenceNo string        `json:"reference_no"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Details     model.Details `json:"details"`
	Status      string        `json:"status"`
	Layover     bool          `json:"layover"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Type = booking.Type
	r.Title = booking.Title
	r.SubTitle = booking.SubTitle
	r.ReferenceNo = booking.ReferenceNo
	r.Date = booking.FlightDate
	r.Time = booking.FlightTime
	r.Details = booking.Details
	r.Status = booking.Status
	r.Layover = booking.Layover()
}

type GetAllBookingResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetAllBookingResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	r.TotalData = len(models)

	for i, booking := range models {
		r.Bookings[i].FromModel(booking)
	}
}
