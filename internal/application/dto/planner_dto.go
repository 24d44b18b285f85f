package dto

// Respuestas del planner. Son endpoints placeholder: el campo Mock lo deja
// explícito para que ningún consumidor los tome por resultados reales.

// OptimizeResponse salida del endpoint de optimización (mock).
type OptimizeResponse struct {
	Mock             bool   `json:"mock"`
	Message          string `json:"message"`
	EstimatedSavings int    `json:"estimated_savings"`
}

// DelayPredictionDTO predicción de atraso para un schedule (mock).
type DelayPredictionDTO struct {
	ScheduleID         string `json:"schedule_id"`
	Reason             string `json:"reason"`
	EstimatedDelayDays int    `json:"estimated_delay_days"`
}

// DelayPredictionsResponse salida del endpoint de predicción de atrasos (mock).
type DelayPredictionsResponse struct {
	Mock             bool                 `json:"mock"`
	DelayedSchedules []DelayPredictionDTO `json:"delayed_schedules"`
}
