// Package mcp exposes read-only AdvControl views over the Model Context
// Protocol.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/advcontrol/pkg/refresh"
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
	"tableflip.dev/advcontrol/pkg/timeutil"
	"tableflip.dev/advcontrol/pkg/views"
)

// Service refreshes screens on demand and projects them for MCP clients.
type Service struct {
	Screens *screens.Set
	now     func() time.Time
}

// NewService wraps a screen set for the signed-in user.
func NewService(set *screens.Set) *Service {
	return &Service{Screens: set, now: time.Now}
}

// Meta describes how fresh a payload is.
type Meta struct {
	FetchedAt string `json:"fetchedAt,omitempty"`
	Stale     bool   `json:"stale,omitempty"`
	Notice    string `json:"notice,omitempty"`
}

func meta[T any](v refresh.View[T], notice string) Meta {
	m := Meta{Notice: notice, Stale: v.State == refresh.Failed}
	if !v.FetchedAt.IsZero() {
		m.FetchedAt = v.FetchedAt.UTC().Format(time.RFC3339)
	}
	return m
}

// DeadlineDTO is a deadline with its type presentation.
type DeadlineDTO struct {
	resource.Deadline
	TypeView views.Presentation `json:"type_view"`
}

type DashboardDTO struct {
	Meta
	Stats  resource.DashboardStats `json:"stats"`
	Alerts []views.AlertView       `json:"alerts"`
}

type AgendaDTO struct {
	Meta
	From      string        `json:"from"`
	Window    string        `json:"window,omitempty"`
	Deadlines []DeadlineDTO `json:"deadlines"`
}

type CasesDTO struct {
	Meta
	Active int               `json:"active"`
	Cases  []screens.CaseRow `json:"cases"`
}

type FinanceDTO struct {
	Meta
	Filter  views.Filter         `json:"filter"`
	Totals  views.Totals         `json:"totals"`
	Records []screens.FinanceRow `json:"records"`
}

func (s *Service) Dashboard(ctx context.Context) (DashboardDTO, error) {
	d := s.Screens.Dashboard
	d.Refresh(ctx)
	v := d.View()
	if err := d.Unavailable(); err != nil {
		return DashboardDTO{}, err
	}
	return DashboardDTO{Meta: meta(v, d.Notice()), Stats: d.Stats(), Alerts: d.Alerts()}, nil
}

// Agenda returns one day's deadlines when window is empty, otherwise the
// deadlines from date through the window.
func (s *Service) Agenda(ctx context.Context, date, window string) (AgendaDTO, error) {
	day, err := timeutil.ParseDate(date, s.now())
	if err != nil {
		return AgendaDTO{}, err
	}
	a := s.Screens.Agenda
	a.Refresh(ctx)
	v := a.View()
	if err := a.Unavailable(); err != nil {
		return AgendaDTO{}, err
	}

	out := AgendaDTO{Meta: meta(v, a.Notice()), From: day.Format(resource.DateLayout)}
	var list []resource.Deadline
	if strings.TrimSpace(window) == "" {
		a.SetSelected(out.From)
		list = a.Day()
	} else {
		days, label, err := timeutil.ParseWindow(window)
		if err != nil {
			return AgendaDTO{}, err
		}
		out.Window = label
		list = views.Upcoming(v.Data, day, days)
	}
	out.Deadlines = make([]DeadlineDTO, len(list))
	for i, d := range list {
		out.Deadlines[i] = DeadlineDTO{Deadline: d, TypeView: views.DeadlineType(d.Type)}
	}
	return out, nil
}

// Cases lists cases, optionally only those with the given status code.
func (s *Service) Cases(ctx context.Context, status string) (CasesDTO, error) {
	c := s.Screens.Cases
	c.Refresh(ctx)
	v := c.View()
	if err := c.Unavailable(); err != nil {
		return CasesDTO{}, err
	}
	rows := c.Rows()
	if status = strings.TrimSpace(status); status != "" {
		filtered := rows[:0:0]
		for _, r := range rows {
			if string(r.Status) == status {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	return CasesDTO{Meta: meta(v, c.Notice()), Active: c.ActiveCount(), Cases: rows}, nil
}

func (s *Service) Finance(ctx context.Context, filter string) (FinanceDTO, error) {
	f, err := views.ParseFilter(filter)
	if err != nil {
		return FinanceDTO{}, err
	}
	fin := s.Screens.Finance
	fin.Refresh(ctx)
	v := fin.View()
	if err := fin.Unavailable(); err != nil {
		return FinanceDTO{}, err
	}
	fin.SetFilter(f)
	return FinanceDTO{Meta: meta(v, fin.Notice()), Filter: f, Totals: fin.Totals(), Records: fin.Rows()}, nil
}

// Kind parses a collection name for the resource templates.
func Kind(name string) (resource.Kind, error) {
	for _, k := range resource.AllKinds() {
		if string(k) == name || screens.Title(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown collection %q", name)
}
