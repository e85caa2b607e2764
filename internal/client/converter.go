package client

import (
	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/slot"
	"courtbook/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

func toDomainDay(dto availabilityResponseDTO) *slot.Day {
	slots := make([]slot.Slot, 0, len(dto.Slots))
	for _, s := range dto.Slots {
		currency := ""
		if s.Currency != nil {
			currency = *s.Currency
		}
		slots = append(slots, slot.Slot{
			Start:        s.Start,
			End:          s.End,
			Available:    s.Available,
			PricePerSlot: s.PricePerSlot,
			Currency:     currency,
		})
	}

	slotMinutes := 0
	if dto.SlotMinutes != nil {
		slotMinutes = *dto.SlotMinutes
	}

	return &slot.Day{
		CourtID:     dto.CourtID,
		Date:        dto.Date,
		SlotMinutes: slotMinutes,
		Slots:       slots,
	}
}

func toDomainBooking(dto bookingDTO) (*booking.Booking, error) {
	var b booking.Booking
	if err := copier.CopyWithOption(&b, &dto, copier.Option{}); err != nil {
		return nil, errs.Wrap(err, "map booking response")
	}
	return &b, nil
}

func toDomainBookings(dtos []bookingDTO) ([]booking.Booking, error) {
	bookings := make([]booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomainBooking(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}
