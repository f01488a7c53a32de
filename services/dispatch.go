package services

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/amirulhaziq/jobsheet-api/models"
)

// DispatchSubmission forwards a submitted jobsheet to the webhook and the
// archive in the background. The HTTP response to the submit call never
// waits on either; failures are logged and swallowed here so a dead
// automation endpoint cannot fail a submission.
func DispatchSubmission(jobsheet models.Jobsheet) {
	payload := StringifyJobsheet(jobsheet)

	go func() {
		if err := GetWebhookNotifier().Notify(payload); err != nil {
			log.Error().Err(err).Int64("js_number", jobsheet.JSNumber).Msg("webhook delivery failed")
		}
	}()

	go func() {
		snapshot, err := json.Marshal(payload)
		if err != nil {
			log.Error().Err(err).Int64("js_number", jobsheet.JSNumber).Msg("failed to encode archive snapshot")
			return
		}
		if _, err := GetArchiveService().ArchiveJobsheet(jobsheet.JSNumber, snapshot); err != nil {
			log.Error().Err(err).Int64("js_number", jobsheet.JSNumber).Msg("archive upload failed")
		}
	}()
}
