package dto

import (
	"time"

	"github.com/tracker-app/backend/internal/application/usecase/board"
	"github.com/tracker-app/backend/internal/domain/entity"
)

// BoardItemResponse is one tracker on the board together with its
// completion state for the reference date.
type BoardItemResponse struct {
	TrackerResponse
	IsCompleted     bool `json:"is_completed"`
	CompletionCount int  `json:"completion_count"`
}

// BoardSectionResponse is one titled group of trackers on the board.
type BoardSectionResponse struct {
	Title    string              `json:"title"`
	Trackers []BoardItemResponse `json:"trackers"`
}

// BoardResponse represents the derived board for one query.
type BoardResponse struct {
	ReferenceDate string                 `json:"reference_date"`
	Filter        entity.Filter          `json:"filter"`
	Sections      []BoardSectionResponse `json:"sections"`
}

// SetFilterRequest represents the filter preference update body.
type SetFilterRequest struct {
	Filter string `json:"filter" binding:"required"`
}

// FilterResponse represents the active filter preference.
type FilterResponse struct {
	Filter entity.Filter `json:"filter"`
}

// ToBoardResponse converts a board query result to its API representation.
func ToBoardResponse(sections []board.Section, referenceDate time.Time, filter entity.Filter) BoardResponse {
	resp := BoardResponse{
		ReferenceDate: referenceDate.Format("2006-01-02"),
		Filter:        filter,
		Sections:      make([]BoardSectionResponse, 0, len(sections)),
	}
	for _, section := range sections {
		out := BoardSectionResponse{
			Title:    section.Title,
			Trackers: make([]BoardItemResponse, 0, len(section.Items)),
		}
		for _, item := range section.Items {
			out.Trackers = append(out.Trackers, BoardItemResponse{
				TrackerResponse: ToTrackerResponse(item.Tracker),
				IsCompleted:     item.IsCompleted,
				CompletionCount: item.CompletionCount,
			})
		}
		resp.Sections = append(resp.Sections, out)
	}
	return resp
}
