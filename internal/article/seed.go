package article

import "github.com/MrLamegame/Anderson-CVI-News/internal/model"

// Seed returns the articles present before any admin action.
func Seed() []model.Article {
	return []model.Article{
		{
			ID:       1,
			Title:    "Anderson CVI Wins Regional Basketball Championship",
			Category: model.CategorySports,
			Author:   "Sports Staff",
			Date:     model.MustParseDate("2025-09-15"),
			Excerpt:  "Our basketball team secured a thrilling victory in the regional championship game last Friday.",
			Content: "In an exciting match that went into overtime, Anderson CVI's basketball team defeated Central High 78-76 to claim the regional championship. " +
				"The team showed incredible determination and skill throughout the tournament. " +
				"Senior captain Mike Johnson led the team with 25 points and 8 rebounds. " +
				"The victory qualifies the team for the state championships next month.",
			Featured: true,
		},
		{
			ID:       2,
			Title:    "Science Fair Showcases Student Innovation",
			Category: model.CategoryAcademics,
			Author:   "Academic Staff",
			Date:     model.MustParseDate("2025-09-12"),
			Excerpt:  "Students presented remarkable projects at this year's annual science fair.",
			Content: "The annual Anderson CVI Science Fair took place last week, featuring over 50 innovative projects from students across all grade levels. " +
				"This year's theme was 'Sustainable Solutions for Tomorrow.' " +
				"Projects ranged from renewable energy solutions to environmental conservation methods. " +
				"First place went to senior Sarah Chen for her project on solar-powered water purification systems.",
		},
		{
			ID:       3,
			Title:    "Fall Dance Registration Now Open",
			Category: model.CategoryEvents,
			Author:   "Student Council",
			Date:     model.MustParseDate("2025-09-10"),
			Excerpt:  "Don't miss out on the biggest social event of the semester!",
			Content: "Registration for the Fall Formal Dance is now open! " +
				"The event will take place on October 15th in the school gymnasium, which will be transformed into an autumn wonderland. " +
				"Tickets are $25 per person or $45 per couple. " +
				"The theme this year is 'Autumn Elegance.' " +
				"Registration forms are available in the main office or online through the student portal.",
			Featured: true,
		},
	}
}
