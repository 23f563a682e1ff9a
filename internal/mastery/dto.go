package mastery

import "github.com/google/uuid"

type SubcategoryMasteryDTO struct {
	SubcategoryID  uuid.UUID `json:"subcategory_id"`
	TotalAnswers   int       `json:"total_answers"`
	CorrectAnswers int       `json:"correct_answers"`
	RollingAverage int       `json:"rolling_average"`
}

type CategoryMasteryDTO struct {
	CategoryID    uuid.UUID               `json:"category_id"`
	Mastery       int                     `json:"mastery"`
	Subcategories []SubcategoryMasteryDTO `json:"subcategories"`
}

type MasteryBreakdownResponse struct {
	OverallMastery int                  `json:"overall_mastery"`
	Categories     []CategoryMasteryDTO `json:"categories"`
}

// BuildBreakdown groups a user's records per category and computes the
// weighted score at both levels.
func BuildBreakdown(records []*MasteryRecord) MasteryBreakdownResponse {
	byCategory := make(map[uuid.UUID][]*MasteryRecord)
	var order []uuid.UUID
	for _, record := range records {
		if _, seen := byCategory[record.CategoryID]; !seen {
			order = append(order, record.CategoryID)
		}
		byCategory[record.CategoryID] = append(byCategory[record.CategoryID], record)
	}

	resp := MasteryBreakdownResponse{
		OverallMastery: weightedAverage(records),
		Categories:     make([]CategoryMasteryDTO, 0, len(order)),
	}
	for _, categoryID := range order {
		group := byCategory[categoryID]
		dto := CategoryMasteryDTO{
			CategoryID: categoryID,
			Mastery:    weightedAverage(group),
		}
		for _, record := range group {
			dto.Subcategories = append(dto.Subcategories, SubcategoryMasteryDTO{
				SubcategoryID:  record.SubcategoryID,
				TotalAnswers:   record.TotalAnswers,
				CorrectAnswers: record.CorrectAnswers,
				RollingAverage: record.RollingAverage,
			})
		}
		resp.Categories = append(resp.Categories, dto)
	}
	return resp
}
