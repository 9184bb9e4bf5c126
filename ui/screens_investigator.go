package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Aswin-K5/nutriview/pkg/model"
)

func (a *App) investigatorHomeScreen() fyne.CanvasObject {
	box := loadingBox()
	loadInto(a, box, a.client.PopulationStats, func(s *model.PopulationStats) fyne.CanvasObject {
		return widget.NewForm(
			widget.NewFormItem("Enrolled patients", widget.NewLabel(fmt.Sprintf("%d", s.TotalPatients))),
			widget.NewFormItem("Dietary recalls", widget.NewLabel(fmt.Sprintf("%d", s.TotalRecalls))),
			widget.NewFormItem("Diet plans", widget.NewLabel(fmt.Sprintf("%d", s.TotalPlans))),
			widget.NewFormItem("Analysis engine", widget.NewLabel(readiness(s.MLModelReady))),
		)
	})
	return container.NewPadded(box)
}

func readiness(ready bool) string {
	if ready {
		return "ready"
	}
	return "not ready"
}

func (a *App) investigatorPatientsScreen() fyne.CanvasObject {
	box := loadingBox()
	loadInto(a, box, a.client.EnrolledPatients, func(patients []model.EnrolledPatient) fyne.CanvasObject {
		list := container.NewVBox()
		for _, p := range patients {
			risk := "unscored"
			if p.RiskCategory != nil {
				risk = *p.RiskCategory
			}
			list.Add(widget.NewLabel(fmt.Sprintf("%s <%s> — %d recalls, BMI %s, risk %s",
				p.FullName, p.Email, p.TotalRecalls, fmtFloat(p.BMI), risk)))
		}
		if len(patients) == 0 {
			list.Add(widget.NewLabel("No patients enrolled."))
		}
		return list
	})

	export := widget.NewButton("Export patients CSV", func() {
		go a.saveExport("patients.csv", a.client.ExportPatientsCSV)
	})
	exportTS := widget.NewButton("Export dietary time-series CSV", func() {
		go a.saveExport("dietary_timeseries.csv", a.client.ExportDietaryTimeseriesCSV)
	})

	return container.NewPadded(container.NewVBox(
		container.NewHBox(export, exportTS),
		widget.NewSeparator(),
		box,
	))
}

// saveExport downloads a CSV export into the user's home directory. The
// file content comes from the backend as-is.
func (a *App) saveExport(name string, fetch func(context.Context) ([]byte, error)) {
	data, err := fetch(context.Background())
	if err != nil {
		a.setStatus(err.Error())
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		a.setStatus(err.Error())
		return
	}
	a.setStatus("Saved " + path)
}

func (a *App) investigatorAnalyticsScreen() fyne.CanvasObject {
	box := loadingBox()
	loadInto(a, box, a.client.PopulationStats, func(s *model.PopulationStats) fyne.CanvasObject {
		list := container.NewVBox(
			widget.NewLabelWithStyle("Clinical averages", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabel(fmt.Sprintf("BMI %.1f · glucose %.1f · triglycerides %.1f · HDL %.1f",
				s.AvgBMI, s.AvgFastingGlucose, s.AvgTriglycerides, s.AvgHDL)),
			widget.NewLabelWithStyle("Dietary averages", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabel(fmt.Sprintf("%.0f kcal · fiber %.1f g · sodium %.0f mg · UPF %.1f%%",
				s.AvgTotalCalories, s.AvgFiberG, s.AvgSodiumMg, s.AvgUltraProcessedPercent)),
			widget.NewLabelWithStyle("Risk distribution", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		)
		for category, n := range s.RiskDistribution {
			list.Add(widget.NewLabel(fmt.Sprintf("  %s: %d", category, n)))
		}
		return list
	})
	return container.NewPadded(box)
}
