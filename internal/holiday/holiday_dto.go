package holiday

import "go-leave/internal/calendar"

type CreateHolidayRequest struct {
	Date     string `json:"date" binding:"required"`
	Name     string `json:"name" binding:"required,max=120"`
	Category string `json:"category"`
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:       h.ID.String(),
		Date:     h.Date.Format(calendar.DateLayout),
		Name:     h.Name,
		Category: string(h.Category),
	}
}

func mapToEntry(h Holiday) calendar.HolidayEntry {
	return calendar.HolidayEntry{
		Date:     calendar.DateOf(h.Date),
		Name:     h.Name,
		Category: string(h.Category),
	}
}
