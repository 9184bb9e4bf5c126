package ui

import (
	"context"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Aswin-K5/nutriview/pkg/model"
)

// loadInto runs fetch off the UI thread and swaps the placeholder's
// content with whatever build returns. Screens stay declarative; all
// waiting happens here.
func loadInto[T any](a *App, box *fyne.Container, fetch func(context.Context) (T, error), build func(T) fyne.CanvasObject) {
	go func() {
		v, err := fetch(context.Background())
		fyne.Do(func() {
			box.Objects = nil
			if err != nil {
				lbl := widget.NewLabel(err.Error())
				lbl.Importance = widget.DangerImportance
				box.Add(lbl)
			} else {
				box.Add(build(v))
			}
			box.Refresh()
		})
	}()
}

func loadingBox() *fyne.Container {
	return container.NewVBox(widget.NewLabel("Loading..."))
}

func fmtFloat(p *float64) string {
	if p == nil {
		return "—"
	}
	return strconv.FormatFloat(*p, 'f', 1, 64)
}

func (a *App) dashboardScreen() fyne.CanvasObject {
	box := loadingBox()
	loadInto(a, box, a.client.ProfileSummary, func(s *model.AnthropometricSummary) fyne.CanvasObject {
		return widget.NewForm(
			widget.NewFormItem("BMI", widget.NewLabel(fmt.Sprintf("%.1f (%s)", s.BMI, s.BMICategory))),
			widget.NewFormItem("Waist/height ratio", widget.NewLabel(fmtFloat(s.WaistHeightRatio))),
			widget.NewFormItem("Metabolic syndrome", widget.NewLabel(fmt.Sprintf("%d components, present: %v",
				s.MetabolicSyndromeComponents, s.MetabolicSyndromePresent))),
			widget.NewFormItem("Estimated calorie requirement", widget.NewLabel(fmt.Sprintf("%.0f kcal", s.EstimatedCalorieReq))),
			widget.NewFormItem("Metabolic risk", widget.NewLabel(fmt.Sprintf("%d (%s)", s.MetabolicRiskScore, s.MetabolicRiskCategory))),
		)
	})
	return container.NewPadded(box)
}

func (a *App) profileScreen() fyne.CanvasObject {
	age := widget.NewEntry()
	sex := widget.NewSelect([]string{"male", "female"}, nil)
	weight := widget.NewEntry()
	height := widget.NewEntry()
	glucose := widget.NewEntry()
	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance

	// Pre-fill from the existing profile if there is one.
	go func() {
		p, err := a.client.Profile(context.Background())
		if err != nil {
			return
		}
		fyne.Do(func() {
			age.SetText(strconv.Itoa(p.Age))
			sex.SetSelected(p.Sex)
			weight.SetText(strconv.FormatFloat(p.WeightKg, 'f', 1, 64))
			height.SetText(strconv.FormatFloat(p.HeightCm, 'f', 1, 64))
			if p.FastingGlucoseMgDl != nil {
				glucose.SetText(strconv.FormatFloat(*p.FastingGlucoseMgDl, 'f', 1, 64))
			}
		})
	}()

	form := widget.NewForm(
		widget.NewFormItem("Age", age),
		widget.NewFormItem("Sex", sex),
		widget.NewFormItem("Weight (kg)", weight),
		widget.NewFormItem("Height (cm)", height),
		widget.NewFormItem("Fasting glucose (mg/dL)", glucose),
	)
	form.SubmitText = "Save"
	form.OnSubmit = func() {
		p := &model.PatientProfile{Sex: sex.Selected}
		p.Age, _ = strconv.Atoi(age.Text)
		p.WeightKg, _ = strconv.ParseFloat(weight.Text, 64)
		p.HeightCm, _ = strconv.ParseFloat(height.Text, 64)
		if v, err := strconv.ParseFloat(glucose.Text, 64); err == nil {
			p.FastingGlucoseMgDl = &v
		}
		go func() {
			_, err := a.client.UpdateProfile(context.Background(), p)
			if err != nil {
				// First save: the profile may not exist yet.
				_, err = a.client.CreateProfile(context.Background(), p)
			}
			if err != nil {
				showErr(errLabel, err)
				return
			}
			a.setStatus("Profile saved")
		}()
	}

	return container.NewPadded(container.NewVBox(form, errLabel, widget.NewSeparator(), a.accountSection()))
}

// accountSection exposes the credential operations: password change and
// account deactivation.
func (a *App) accountSection() fyne.CanvasObject {
	oldPw := widget.NewPasswordEntry()
	newPw := widget.NewPasswordEntry()
	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance

	pwForm := widget.NewForm(
		widget.NewFormItem("Current password", oldPw),
		widget.NewFormItem("New password", newPw),
	)
	pwForm.SubmitText = "Change password"
	pwForm.OnSubmit = func() {
		if err := model.ValidatePassword(newPw.Text); err != nil {
			showErr(errLabel, err)
			return
		}
		go func() {
			if err := a.client.ChangePassword(context.Background(), oldPw.Text, newPw.Text); err != nil {
				showErr(errLabel, err)
				return
			}
			a.setStatus("Password updated")
		}()
	}

	deactivate := widget.NewButton("Deactivate account", func() {
		go func() {
			if err := a.client.DeactivateAccount(context.Background()); err != nil {
				showErr(errLabel, err)
				return
			}
			a.store.Logout()
		}()
	})
	deactivate.Importance = widget.DangerImportance

	return container.NewVBox(
		widget.NewLabelWithStyle("Account", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		pwForm, deactivate, errLabel,
	)
}

func (a *App) recallScreen() fyne.CanvasObject {
	search := widget.NewEntry()
	search.SetPlaceHolder("Search foods (min 2 characters)")
	results := container.NewVBox()
	var items []model.FoodItem
	itemsBox := container.NewVBox()
	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance

	refreshItems := func() {
		itemsBox.Objects = nil
		for _, it := range items {
			itemsBox.Add(widget.NewLabel(fmt.Sprintf("%s — %.0f g (%s)", it.FoodDescription, it.QuantityGrams, it.MealType)))
		}
		itemsBox.Refresh()
	}

	search.OnSubmitted = func(q string) {
		go func() {
			foods, err := a.client.SearchFoods(context.Background(), q, 10)
			fyne.Do(func() {
				results.Objects = nil
				if err != nil {
					showErr(errLabel, err)
					return
				}
				for _, f := range foods {
					food := f
					results.Add(widget.NewButton(food.MainDescription, func() {
						items = append(items, model.FoodItem{
							FoodCode:        food.FoodCode,
							FoodDescription: food.MainDescription,
							QuantityGrams:   100,
							MealType:        "lunch",
						})
						refreshItems()
					}))
				}
				results.Refresh()
			})
		}()
	}

	date := widget.NewEntry()
	date.SetPlaceHolder("YYYY-MM-DD")
	submit := widget.NewButton("Submit recall", func() {
		if len(items) == 0 {
			showErr(errLabel, fmt.Errorf("add at least one food item"))
			return
		}
		go func() {
			rec, err := a.client.CreateRecall(context.Background(), &model.RecallCreate{
				RecallDate: date.Text,
				FoodItems:  items,
			})
			if err != nil {
				showErr(errLabel, err)
				return
			}
			a.setStatus(fmt.Sprintf("Recall #%d saved", rec.ID))
		}()
	})

	return container.NewPadded(container.NewVBox(
		search, results,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Selected items", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		itemsBox,
		date, submit, errLabel,
	))
}

func (a *App) dietPlanScreen() fyne.CanvasObject {
	box := loadingBox()
	reload := func() {
		loadInto(a, box, a.client.PlanHistory, func(plans []model.DietPlan) fyne.CanvasObject {
			list := container.NewVBox()
			for _, p := range plans {
				summary := "(no summary)"
				if p.Summary != nil {
					summary = *p.Summary
				}
				list.Add(widget.NewLabel(fmt.Sprintf("#%d [%s] %s", p.ID, p.Source, summary)))
			}
			if len(plans) == 0 {
				list.Add(widget.NewLabel("No plans yet — generate one."))
			}
			return list
		})
	}
	reload()

	generate := widget.NewButton("Generate plan", func() {
		go func() {
			if _, err := a.client.GeneratePlan(context.Background(), &model.PlanRequest{Source: "combined"}); err != nil {
				a.setStatus(err.Error())
				return
			}
			a.setStatus("Plan generated")
			reload()
		}()
	})

	return container.NewPadded(container.NewVBox(generate, box))
}

func (a *App) ffqScreen() fyne.CanvasObject {
	date := widget.NewEntry()
	date.SetPlaceHolder("YYYY-MM-DD")
	fields := map[string]*widget.Entry{}
	form := widget.NewForm(widget.NewFormItem("Assessment date", date))
	for _, name := range []string{
		"Vegetables (servings/day)", "Fruits (servings/day)", "Fish (servings/week)",
		"Red meat (servings/week)", "Sugary beverages (servings/day)", "Fast food (servings/week)",
	} {
		e := widget.NewEntry()
		e.SetText("0")
		fields[name] = e
		form.Append(name, e)
	}
	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance

	parse := func(name string) float64 {
		v, _ := strconv.ParseFloat(fields[name].Text, 64)
		return v
	}
	form.SubmitText = "Submit"
	form.OnSubmit = func() {
		in := &model.FFQ{
			AssessmentDate:             date.Text,
			VegetablesServingsDay:      parse("Vegetables (servings/day)"),
			FruitsServingsDay:          parse("Fruits (servings/day)"),
			FishServingsWeek:           parse("Fish (servings/week)"),
			RedMeatServingsWeek:        parse("Red meat (servings/week)"),
			SugaryBeveragesServingsDay: parse("Sugary beverages (servings/day)"),
			FastFoodServingsWeek:       parse("Fast food (servings/week)"),
		}
		go func() {
			if _, err := a.client.SubmitFFQ(context.Background(), in); err != nil {
				showErr(errLabel, err)
				return
			}
			a.setStatus("FFQ submitted")
		}()
	}

	return container.NewPadded(container.NewVBox(form, errLabel))
}

func (a *App) progressScreen() fyne.CanvasObject {
	box := loadingBox()
	loadInto(a, box, a.client.Recalls, func(recs []model.DietaryRecord) fyne.CanvasObject {
		list := container.NewVBox()
		for _, r := range recs {
			list.Add(widget.NewLabel(fmt.Sprintf("%s — %s kcal, quality %s",
				r.RecallDate, fmtFloat(r.TotalCalories), fmtFloat(r.DietQualityScore))))
		}
		if len(recs) == 0 {
			list.Add(widget.NewLabel("No recalls recorded yet."))
		}
		return list
	})
	return container.NewPadded(box)
}

func (a *App) recallCalendarScreen() fyne.CanvasObject {
	box := loadingBox()
	loadInto(a, box, a.client.Recalls, func(recs []model.DietaryRecord) fyne.CanvasObject {
		byDate := map[string]int{}
		for _, r := range recs {
			byDate[r.RecallDate]++
		}
		list := container.NewVBox()
		for date, n := range byDate {
			list.Add(widget.NewLabel(fmt.Sprintf("%s: %d recall(s)", date, n)))
		}
		if len(byDate) == 0 {
			list.Add(widget.NewLabel("Nothing logged yet."))
		}
		return list
	})
	return container.NewPadded(box)
}

func (a *App) planComparisonScreen() fyne.CanvasObject {
	box := loadingBox()
	loadInto(a, box, a.client.ComparePlans, func(c *model.ModelComparison) fyne.CanvasObject {
		list := container.NewVBox(
			widget.NewLabel(fmt.Sprintf("Agreement: %.0f%%", c.AgreementScore*100)),
			widget.NewLabel(fmt.Sprintf("Rule-based plan #%d vs ML plan #%d", c.RuleBasedPlan.ID, c.MLPlan.ID)),
		)
		for _, d := range c.KeyDifferences {
			list.Add(widget.NewLabel("• " + d))
		}
		return list
	})
	return container.NewPadded(box)
}

func (a *App) goalsScreen() fyne.CanvasObject {
	box := loadingBox()
	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance

	var reload func()
	reload = func() {
		loadInto(a, box, a.client.Goals, func(goals []model.Goal) fyne.CanvasObject {
			list := container.NewVBox()
			for _, g := range goals {
				goal := g
				row := container.NewHBox(
					widget.NewLabel(fmt.Sprintf("%s → %.1f (progress %s%%)", goal.GoalType, goal.TargetValue, fmtFloat(goal.ProgressPercent))),
					widget.NewButton("Delete", func() {
						go func() {
							if err := a.client.DeleteGoal(context.Background(), goal.ID); err != nil {
								showErr(errLabel, err)
								return
							}
							reload()
						}()
					}),
				)
				list.Add(row)
			}
			if len(goals) == 0 {
				list.Add(widget.NewLabel("No goals set."))
			}
			return list
		})
	}
	reload()

	goalType := widget.NewSelect([]string{"bmi", "glucose", "weight", "triglycerides", "hdl"}, nil)
	goalType.SetSelected("weight")
	target := widget.NewEntry()
	target.SetPlaceHolder("target value")
	add := widget.NewButton("Add goal", func() {
		v, err := strconv.ParseFloat(target.Text, 64)
		if err != nil {
			showErr(errLabel, fmt.Errorf("target must be a number"))
			return
		}
		go func() {
			if _, err := a.client.CreateGoal(context.Background(), goalType.Selected, v, ""); err != nil {
				showErr(errLabel, err)
				return
			}
			reload()
		}()
	})

	return container.NewPadded(container.NewVBox(
		container.NewHBox(goalType, target, add),
		errLabel,
		widget.NewSeparator(),
		box,
	))
}
