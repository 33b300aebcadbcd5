package scheduling

import "doctorsportal/cmd/internal/domain/entity"

// ComputeAvailability returns a copy of every option with the slots already
// claimed on date removed. Bookings for other dates are ignored, as are
// bookings naming a slot the option does not offer. Slot order is kept.
func ComputeAvailability(options []*entity.AppointmentOption, bookings []*entity.Booking, date string) []*entity.AppointmentOption {
	booked := indexBookedSlots(bookings, date)

	result := make([]*entity.AppointmentOption, len(options))
	for i, opt := range options {
		cp := opt.Clone()
		taken := booked[opt.Name]
		if len(taken) > 0 {
			remaining := make([]string, 0, len(cp.Slots))
			for _, slot := range cp.Slots {
				if _, ok := taken[slot]; !ok {
					remaining = append(remaining, slot)
				}
			}
			cp.Slots = remaining
		}
		result[i] = cp
	}
	return result
}

// indexBookedSlots maps treatment name to the set of slots booked on date.
func indexBookedSlots(bookings []*entity.Booking, date string) map[string]map[string]struct{} {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b == nil || b.AppointmentDate != date {
			continue
		}
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}
	return booked
}
