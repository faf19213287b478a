package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloudgroundcontrol/chime-dialin/pkg/callflow"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/conference"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/directory"
	"github.com/cloudgroundcontrol/chime-dialin/pkg/sma"
)

type callControlController struct {
	service    callflow.Service
	directory  directory.Directory
	conference conference.Conference
}

func NewCallControlController(service callflow.Service, dir directory.Directory, conf conference.Conference) callControlController {
	return callControlController{
		service:    service,
		directory:  dir,
		conference: conf,
	}
}

var (
	ErrEmptyMeetingID = errors.New("empty meeting id")
	ErrEmptyMeeting   = errors.New("meeting has no attendees")
)

// HandleCallEvent runs one platform event through the state machine and
// returns the resulting action list. Gateway failures surface as 500 and
// the platform's own retry/hangup policy applies.
func (cc *callControlController) HandleCallEvent(c echo.Context) error {
	event := new(sma.CallEvent)
	if err := c.Bind(event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	actions, err := cc.service.HandleEvent(c.Request().Context(), *event)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, sma.NewResponse(actions))
}

// MuteMeeting mutes every attendee of a meeting server-side. Operator
// surface; callers use the in-call commands instead.
func (cc *callControlController) MuteMeeting(c echo.Context) error {
	return cc.setMeetingMute(c, true)
}

func (cc *callControlController) UnmuteMeeting(c echo.Context) error {
	return cc.setMeetingMute(c, false)
}

func (cc *callControlController) setMeetingMute(c echo.Context, muted bool) error {
	meetingID := c.Param("meetingID")
	if meetingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, ErrEmptyMeetingID)
	}

	roster, err := cc.directory.FindAllByMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if len(roster) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, ErrEmptyMeeting)
	}

	attendeeIDs := make([]string, 0, len(roster))
	for _, rec := range roster {
		attendeeIDs = append(attendeeIDs, rec.AttendeeID)
	}

	err = cc.conference.SetMute(c.Request().Context(), meetingID, attendeeIDs, muted)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.NoContent(http.StatusOK)
}
