// Package model holds the sample view models converted by aotjson.
package model

import "time"

//go:generate go run github.com/viant/aotjson/cmd/aotjsongen -type=LoginViewModel,Location,IndexViewModel,MyEventsListerViewModel,CollectionsOfPrimitives -output=model_aotjson.go

type LoginViewModel struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type ActiveOrUpcomingEvent struct {
	ID                           int       `json:"id"`
	ImageURL                     string    `json:"imageUrl"`
	Name                         string    `json:"name"`
	CampaignName                 string    `json:"campaignName"`
	CampaignManagedOrganizerName string    `json:"campaignManagedOrganizerName"`
	Description                  string    `json:"description"`
	StartDate                    time.Time `json:"startDate"`
	EndDate                      time.Time `json:"endDate"`
}

type CampaignSummaryViewModel struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	ImageURL         string `json:"imageUrl"`
	OrganizationName string `json:"organizationName"`
	Headline         string `json:"headline"`
}

type IndexViewModel struct {
	ActiveOrUpcomingEvents []ActiveOrUpcomingEvent   `json:"activeOrUpcomingEvents"`
	FeaturedCampaign       *CampaignSummaryViewModel `json:"featuredCampaign"`
	IsNewAccount           bool                      `json:"isNewAccount"`
}

// HasFeaturedCampaign is derived and never serialized.
func (m *IndexViewModel) HasFeaturedCampaign() bool {
	return m.FeaturedCampaign != nil
}

type MyEventsListerItemTask struct {
	Name      string     `json:"name"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// FormattedDate renders the task window, e.g. "Mon 01/02/06 - Tue 01/03/06".
func (t *MyEventsListerItemTask) FormattedDate() string {
	if t.StartDate == nil || t.EndDate == nil {
		return ""
	}
	const layout = "Mon 01/02/06"
	return t.StartDate.Format(layout) + " - " + t.EndDate.Format(layout)
}

type MyEventsListerItem struct {
	EventID        int                      `json:"eventId"`
	EventName      string                   `json:"eventName"`
	StartDate      time.Time                `json:"startDate"`
	EndDate        time.Time                `json:"endDate"`
	TimeZone       string                   `json:"timeZone"`
	Campaign       string                   `json:"campaign"`
	Organization   string                   `json:"organization"`
	VolunteerCount int                      `json:"volunteerCount"`
	Tasks          []MyEventsListerItemTask `json:"tasks"`
}

type MyEventsListerViewModel struct {
	CurrentEvents []MyEventsListerItem `json:"currentEvents"`
	FutureEvents  []MyEventsListerItem `json:"futureEvents"`
	PastEvents    []MyEventsListerItem `json:"pastEvents"`
}

type CollectionsOfPrimitives struct {
	ByteArray     []byte         `json:"byteArray"`
	DateTimeArray []time.Time    `json:"dateTimeArray"`
	Dictionary    map[string]int `json:"dictionary"`
	ListOfInt     []int          `json:"listOfInt"`
	ListOfString  []string       `json:"listOfString"`
	ListOfFloat   []float64      `json:"listOfFloat"`
}
