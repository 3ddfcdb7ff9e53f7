// Package tui renders a built waveform in the terminal: one LUT period as a
// braille plot with its segment boundaries marked, plus the numbers a bench
// operator wants to eyeball before the LUT goes to hardware.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/navidys/tvxwidgets"
	"github.com/rivo/tview"

	"github.com/navjotschahal/moku-arbitrary-waveform-poc/config"
	"github.com/navjotschahal/moku-arbitrary-waveform-poc/waveform"
)

type infoTableData struct {
	tview.TableContentReadOnly
	rows [][2]string
}

func (d *infoTableData) GetRowCount() int {
	return len(d.rows)
}

func (d *infoTableData) GetColumnCount() int {
	return 2
}

func (d *infoTableData) GetCell(row, column int) *tview.TableCell {
	if row < 0 || row >= len(d.rows) {
		return tview.NewTableCell("ERROR")
	}
	if column == 0 {
		return tview.NewTableCell(fmt.Sprintf("[lightskyblue]%s ", d.rows[row][0]))
	}
	return tview.NewTableCell(fmt.Sprintf("[white]%s", d.rows[row][1]))
}

func buildInfo(lut waveform.LUT, vpp float64) *infoTableData {
	rows := [][2]string{
		{"Repetition freq:", fmt.Sprintf("%.3f kHz", lut.FRep/1e3)},
		{"Period:", fmt.Sprintf("%.3f µs", 1e6/lut.FRep)},
		{"Samples:", fmt.Sprintf("%d", len(lut.Samples))},
		{"Vpp:", fmt.Sprintf("%.3f V", vpp)},
	}
	for i, b := range lut.Boundaries {
		rows = append(rows, [2]string{
			fmt.Sprintf("Boundary t%d:", i+1),
			fmt.Sprintf("%.3f µs", b*1e6),
		})
	}
	return &infoTableData{rows: rows}
}

// boundarySeries marks the segment boundaries as vertical spikes in a second
// plot series so they land in the same axes as the waveform.
func boundarySeries(lut waveform.LUT, scale float64) []float64 {
	out := make([]float64, len(lut.Samples))
	period := 1 / lut.FRep
	for i := range out {
		out[i] = -scale
	}
	for _, b := range lut.Boundaries {
		idx := int(b / period * float64(len(lut.Samples)))
		if idx >= len(out) {
			idx = len(out) - 1
		}
		out[idx] = scale
	}
	return out
}

// StartUI shows the waveform and blocks until the user quits with q or Esc.
func StartUI(lut waveform.LUT, conf config.PlotConf, title string, vpp float64) {
	app := tview.NewApplication()

	// Display in volts, the scale the device will actually output.
	scale := vpp / 2
	scaled := make([]float64, len(lut.Samples))
	for i, v := range lut.Samples {
		scaled[i] = v * scale
	}

	wavePlot := tvxwidgets.NewPlot()
	wavePlot.SetLineColor([]tcell.Color{tcell.ColorLightSkyBlue, tcell.ColorRed})
	wavePlot.SetMarker(tvxwidgets.PlotMarkerBraille)
	wavePlot.SetData([][]float64{scaled, boundarySeries(lut, scale)})
	wavePlot.SetBorder(true)
	wavePlot.SetTitle(title)

	info := tview.NewTable().SetContent(buildInfo(lut, vpp))
	info.SetSelectable(false, false)
	info.SetBorder(true)
	info.SetTitle("Waveform")

	rightCol := tview.NewFlex().SetDirection(tview.FlexRow)
	rightCol.AddItem(info, 0, 2, false)

	if conf.DoFFT {
		spectrumPlot := tvxwidgets.NewPlot()
		spectrumPlot.SetLineColor([]tcell.Color{tcell.ColorGreen})
		spectrumPlot.SetMarker(tvxwidgets.PlotMarkerBraille)
		spectrumPlot.SetData([][]float64{Spectrum(lut.Samples)})
		spectrumPlot.SetBorder(true)
		spectrumPlot.SetTitle("Spectrum (dB)")
		rightCol.AddItem(spectrumPlot, 0, 3, false)
	}

	if conf.EnableLogOutput {
		logOut := tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetWordWrap(true)
		logOut.SetChangedFunc(func() {
			logOut.ScrollToEnd()
			app.Draw()
		})
		logOut.SetBorder(true)
		logOut.SetTitle("Log Output")
		log.SetOutput(logOut)
		rightCol.AddItem(logOut, 0, 2, false)
	}

	page := tview.NewFlex().SetDirection(tview.FlexColumn)
	page.AddItem(wavePlot, 0, 5, false)
	page.AddItem(rightCol, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	go func() {
		for {
			app.Draw()
			time.Sleep(time.Duration(conf.RefreshMs) * time.Millisecond)
		}
	}()

	if err := app.SetRoot(page, true).EnableMouse(true).Run(); err != nil {
		log.Fatalf("Could not start UI: %v", err)
	}
}
