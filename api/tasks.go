package api

import (
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/codeXAI06/ReliefLink/background"
	"github.com/codeXAI06/ReliefLink/schema"
)

// enqueueBroadcastRequest hands the nearby-helper fan-out to the worker.
// Enqueue failures are logged and dropped; notification is best effort
// and never holds up request creation.
func (s *Server) enqueueBroadcastRequest(request schema.HelpRequest) {
	if s.background == nil {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: background.TaskBroadcastNewRequest,
		Args: []tasks.Arg{
			{Type: "string", Value: request.ID.String()},
			{Type: "float64", Value: request.Latitude},
			{Type: "float64", Value: request.Longitude},
		},
	}); err != nil {
		log.WithError(err).Error("enqueue broadcast request task")
	}
}

func (s *Server) enqueueNotifyAccepted(request schema.HelpRequest) {
	if s.background == nil {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: background.TaskNotifyRequestAccepted,
		Args: []tasks.Arg{
			{Type: "string", Value: request.ID.String()},
			{Type: "string", Value: request.Phone},
			{Type: "string", Value: request.DetectedLanguage},
		},
	}); err != nil {
		log.WithError(err).Error("enqueue notify accepted task")
	}
}
