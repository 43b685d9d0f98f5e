package jetblue

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// BookingBaseURL is the page that issues the LFS requests
const BookingBaseURL = "https://www.jetblue.com/booking/flights"

// Substrings identifying the two background responses carrying RawPayload bodies.
const (
	OutboundResponseMarker = "outboundLFS"
	InboundResponseMarker  = "inboundLFS"
)

// PassengerInfo counts travellers by age band
type PassengerInfo struct {
	Adults   int `yaml:"adults" validate:"gte=1,lte=9"`
	Children int `yaml:"children" validate:"gte=0,lte=9"`
	Infants  int `yaml:"infants" validate:"gte=0,ltefield=Adults"`
}

// SearchQuery describes one round trip search
type SearchQuery struct {
	Origin      string    `validate:"required,len=3,alpha"`
	Destination string    `validate:"required,len=3,alpha,nefield=Origin"`
	DepartDate  time.Time `validate:"required"`
	ReturnDate  time.Time `validate:"required"`
	Passengers  PassengerInfo
}

var queryValidator = validator.New()

// Validate checks airport codes, passenger counts and date order.
func (q SearchQuery) Validate() error {
	if err := queryValidator.Struct(q); err != nil {
		return err
	}
	if q.ReturnDate.Before(q.DepartDate) {
		return &ShapeError{Path: "return", Message: "return date is before departure date"}
	}
	return nil
}

// BookingURL builds the booking page URL for the query.
func (q SearchQuery) BookingURL() string {
	v := url.Values{}
	v.Set("from", strings.ToUpper(q.Origin))
	v.Set("to", strings.ToUpper(q.Destination))
	v.Set("depart", q.DepartDate.Format("2006-01-02"))
	v.Set("return", q.ReturnDate.Format("2006-01-02"))
	v.Set("isMultiCity", "false")
	v.Set("noOfRoute", "1")
	v.Set("lang", "en")
	v.Set("adults", strconv.Itoa(q.Passengers.Adults))
	v.Set("children", strconv.Itoa(q.Passengers.Children))
	v.Set("infants", strconv.Itoa(q.Passengers.Infants))
	v.Set("sharedMarket", "false")
	v.Set("roundTripFaresFlag", "false")
	v.Set("usePoints", "false")
	return BookingBaseURL + "?" + v.Encode()
}
