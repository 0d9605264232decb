package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/gitfolio/internal/calendar"
	"github.com/osse101/gitfolio/internal/domain"
	"github.com/osse101/gitfolio/internal/logger"
	"github.com/osse101/gitfolio/internal/validation"
)

const contributionCalendarQuery = `query($login: String!, $from: DateTime, $to: DateTime) {
  user(login: $login) {
    login
    name
    avatarUrl
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            contributionLevel
          }
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLEnvelope struct {
	Data struct {
		User json.RawMessage `json:"user"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type graphQLUser struct {
	Login                   string  `json:"login"`
	Name                    *string `json:"name"`
	AvatarURL               *string `json:"avatarUrl"`
	ContributionsCollection struct {
		ContributionCalendar struct {
			TotalContributions int `json:"totalContributions"`
			Weeks              []struct {
				ContributionDays []graphQLDay `json:"contributionDays"`
			} `json:"weeks"`
		} `json:"contributionCalendar"`
	} `json:"contributionsCollection"`
}

// graphQLDay keeps count and date raw so a malformed entry becomes a
// placeholder downstream instead of failing the whole decode.
type graphQLDay struct {
	Date              json.RawMessage `json:"date"`
	ContributionCount json.RawMessage `json:"contributionCount"`
	ContributionLevel string          `json:"contributionLevel"`
}

// GetContributionCalendar fetches the contribution calendar of login. A year
// of 0 asks GitHub for its default window, the trailing year.
func (c *Client) GetContributionCalendar(ctx context.Context, login string, year int) (domain.ContributionCalendar, error) {
	if err := checkUsername(login); err != nil {
		return domain.ContributionCalendar{}, err
	}
	if err := c.checkYear(year); err != nil {
		return domain.ContributionCalendar{}, err
	}

	log := logger.FromContext(ctx)
	if !c.hasToken {
		log.Warn(LogMsgNoToken, "login", login)
		return domain.ContributionCalendar{}, domain.ErrTokenRequired
	}

	key := cacheKey(login, strconv.Itoa(year))
	if cal, ok := c.calendars.Get(key); ok {
		log.Debug(LogMsgCacheHit, "kind", cacheKindCalendar, "login", login, "year", year)
		return cal, nil
	}

	log.Debug(LogMsgFetchingCalendar, "login", login, "year", year)
	body, err := c.postGraphQL(ctx, graphQLRequest{
		Query:     contributionCalendarQuery,
		Variables: calendarVariables(login, year),
	})
	record(EndpointCalendar, err)
	if err != nil {
		return domain.ContributionCalendar{}, mapError(err, login)
	}

	cal, err := c.decodeCalendar(body, login)
	if err != nil {
		return domain.ContributionCalendar{}, err
	}
	cal.QueryYear = year

	c.calendars.Set(key, cal)
	return cal, nil
}

func (c *Client) checkYear(year int) error {
	if year == 0 {
		return nil
	}
	if year < FirstContributionYear || year > c.now().UTC().Year()+1 {
		return fmt.Errorf("%w: %d: %s", domain.ErrInvalidYear, year, ErrMsgYearOutOfRange)
	}
	return nil
}

// calendarVariables bounds the query to the calendar year in UTC.
func calendarVariables(login string, year int) map[string]any {
	vars := map[string]any{"login": login}
	if year != 0 {
		vars["from"] = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
		vars["to"] = time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC).Format(time.RFC3339)
	}
	return vars
}

func (c *Client) postGraphQL(ctx context.Context, payload graphQLRequest) ([]byte, error) {
	req, err := c.gh.NewRequest("POST", c.graphQLURL, payload)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := c.gh.Do(ctx, req, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Client) decodeCalendar(body []byte, login string) (domain.ContributionCalendar, error) {
	var envelope graphQLEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return domain.ContributionCalendar{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedCalendar, ErrMsgDecodeCalendar, err)
	}
	if len(envelope.Errors) > 0 {
		return domain.ContributionCalendar{}, mapGraphQLErrors(envelope.Errors, login)
	}
	if len(envelope.Data.User) == 0 || bytes.Equal(bytes.TrimSpace(envelope.Data.User), []byte("null")) {
		return domain.ContributionCalendar{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, login)
	}

	if err := c.schemas.ValidateBytes(body, validation.SchemaContributionCalendar); err != nil {
		return domain.ContributionCalendar{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedCalendar, ErrMsgCalendarSchema, err)
	}

	var user graphQLUser
	if err := json.Unmarshal(envelope.Data.User, &user); err != nil {
		return domain.ContributionCalendar{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedCalendar, ErrMsgDecodeCalendar, err)
	}

	raw := user.ContributionsCollection.ContributionCalendar
	cal := domain.ContributionCalendar{
		Weeks:              make([]domain.ContributionWeek, 0, len(raw.Weeks)),
		TotalContributions: raw.TotalContributions,
		User: domain.UserRef{
			Login:     user.Login,
			Name:      deref(user.Name),
			AvatarURL: deref(user.AvatarURL),
		},
	}
	for _, w := range raw.Weeks {
		week := domain.ContributionWeek{Days: make([]domain.ContributionDay, 0, len(w.ContributionDays))}
		for _, d := range w.ContributionDays {
			week.Days = append(week.Days, toContributionDay(d))
		}
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal, nil
}

// toContributionDay marks unreadable counts with -1 so calendar.Validate
// turns the day into a placeholder.
func toContributionDay(d graphQLDay) domain.ContributionDay {
	var date string
	_ = json.Unmarshal(d.Date, &date)

	count, ok := calendar.ParseCount(d.ContributionCount)
	if !ok {
		count = -1
	}
	return domain.ContributionDay{
		Date:  date,
		Count: count,
		Level: calendar.LevelFromEnum(d.ContributionLevel),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
