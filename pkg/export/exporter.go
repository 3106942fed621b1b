package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"kaio/entities"
)

// WeeklyWorkbook renders the weekly plan to one sheet per weekday plus a
// grocery sheet grouped by category.
func WeeklyWorkbook(weekly *entities.WeeklyPlan, grocery []entities.GroceryItem) (*bytes.Buffer, error) {
	if weekly == nil {
		return nil, fmt.Errorf("no weekly plan")
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, day := range entities.Weekdays {
		plan, ok := weekly.Days[day]
		if !ok {
			continue
		}
		if _, err := f.NewSheet(day); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", day, err)
		}
		row := 1
		set := func(a, b string) {
			f.SetCellValue(day, fmt.Sprintf("A%d", row), a)
			f.SetCellValue(day, fmt.Sprintf("B%d", row), b)
			row++
		}
		set("Wake time", plan.WakeTime)
		set("Hydration", plan.Hydration)
		set("Workout", plan.Workout)
		if plan.BeardCare != "" {
			set("Beard care", plan.BeardCare)
		}
		row++
		f.SetCellValue(day, fmt.Sprintf("A%d", row), "Meal")
		f.SetCellValue(day, fmt.Sprintf("B%d", row), "Calories")
		f.SetCellValue(day, fmt.Sprintf("C%d", row), "Protein (g)")
		f.SetCellValue(day, fmt.Sprintf("D%d", row), "Details")
		row++
		for _, m := range plan.Meals {
			f.SetCellValue(day, fmt.Sprintf("A%d", row), m.Name)
			f.SetCellValue(day, fmt.Sprintf("B%d", row), m.Calories)
			f.SetCellValue(day, fmt.Sprintf("C%d", row), m.Protein)
			f.SetCellValue(day, fmt.Sprintf("D%d", row), m.Details)
			row++
		}
		row++
		for i, task := range plan.Checklist {
			f.SetCellValue(day, fmt.Sprintf("A%d", row), fmt.Sprintf("Task %d", i+1))
			f.SetCellValue(day, fmt.Sprintf("B%d", row), task)
			row++
		}
	}

	const sheet = "Grocery"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}
	f.SetCellValue(sheet, "A1", "Category")
	f.SetCellValue(sheet, "B1", "Item")
	f.SetCellValue(sheet, "C1", "Purchased")
	row := 2
	for _, cat := range entities.GroceryCategories {
		for _, it := range grocery {
			if entities.NormalizeGroceryCategory(it.Category) != cat {
				continue
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), cat)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), it.Name)
			mark := ""
			if it.Purchased {
				mark = "x"
			}
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), mark)
			row++
		}
	}

	// drop the default sheet so Monday opens first
	f.DeleteSheet("Sheet1")

	return f.WriteToBuffer()
}
