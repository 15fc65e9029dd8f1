package handlers

import (
	"net/http"
	"runtime"

	"github.com/megahand-az/megahand-be/internal/httpx"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// StatusHandler reports a snapshot of host resource usage for the admin panel.
type StatusHandler struct{}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// StatusResponse is the host snapshot returned by Get.
type StatusResponse struct {
	CPUPercent float64 `json:"cpuPercent"`
	MemUsed    uint64  `json:"memUsed"`
	MemTotal   uint64  `json:"memTotal"`
	MemPercent float64 `json:"memPercent"`
	Goroutines int     `json:"goroutines"`
}

// Get returns current CPU and memory usage.
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{Goroutines: runtime.NumGoroutine()}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		resp.CPUPercent = percents[0]
	} else if err != nil {
		log.Warn().Err(err).Msg("Failed to read CPU usage")
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read memory usage")
		httpx.Error(w, http.StatusInternalServerError, "Failed to read host stats")
		return
	}
	resp.MemUsed = vm.Used
	resp.MemTotal = vm.Total
	resp.MemPercent = vm.UsedPercent

	httpx.Respond(w, http.StatusOK, resp)
}
