package githubapi

import (
	"strconv"
	"strings"

	gh "github.com/google/go-github/v62/github"

	"github.com/osse101/gitfolio/internal/domain"
)

func toUserProfile(u *gh.User) domain.UserProfile {
	return domain.UserProfile{
		Login:           u.GetLogin(),
		Name:            u.GetName(),
		AvatarURL:       u.GetAvatarURL(),
		HTMLURL:         u.GetHTMLURL(),
		Bio:             u.GetBio(),
		Location:        u.GetLocation(),
		Company:         u.GetCompany(),
		Blog:            u.GetBlog(),
		TwitterUsername: u.GetTwitterUsername(),
		PublicRepos:     u.GetPublicRepos(),
		PublicGists:     u.GetPublicGists(),
		Followers:       u.GetFollowers(),
		Following:       u.GetFollowing(),
		CreatedAt:       u.GetCreatedAt().Time.UTC(),
	}
}

func toRepository(r *gh.Repository) domain.Repository {
	return domain.Repository{
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Description:     r.GetDescription(),
		HTMLURL:         r.GetHTMLURL(),
		Language:        r.GetLanguage(),
		Size:            int64(r.GetSize()),
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		Fork:            r.GetFork(),
		UpdatedAt:       r.GetUpdatedAt().Time.UTC(),
	}
}

// toActivityEvent flattens an event into a one-line action and detail.
// Payloads that fail to parse keep the generic action.
func toActivityEvent(e *gh.Event) domain.ActivityEvent {
	out := domain.ActivityEvent{
		ID:        e.GetID(),
		Type:      e.GetType(),
		Repo:      e.GetRepo().GetName(),
		Action:    strings.TrimSuffix(e.GetType(), "Event"),
		CreatedAt: e.GetCreatedAt().Time.UTC(),
	}

	payload, err := e.ParsePayload()
	if err != nil {
		return out
	}

	switch p := payload.(type) {
	case *gh.PushEvent:
		commits := len(p.Commits)
		if commits == 0 {
			commits = 1
		}
		out.Action = "pushed " + strconv.Itoa(commits) + " commit"
		if commits > 1 {
			out.Action += "s"
		}
		if len(p.Commits) > 0 {
			out.Detail = firstLine(p.Commits[0].GetMessage())
		}
	case *gh.CreateEvent:
		out.Action = "created " + p.GetRefType()
		out.Detail = p.GetRef()
	case *gh.DeleteEvent:
		out.Action = "deleted " + p.GetRefType()
		out.Detail = p.GetRef()
	case *gh.IssuesEvent:
		out.Action = p.GetAction() + " issue"
		out.Detail = p.GetIssue().GetTitle()
	case *gh.PullRequestEvent:
		out.Action = p.GetAction() + " pull request"
		out.Detail = p.GetPullRequest().GetTitle()
	case *gh.ReleaseEvent:
		out.Action = p.GetAction() + " release"
		out.Detail = p.GetRelease().GetName()
		if out.Detail == "" {
			out.Detail = p.GetRelease().GetTagName()
		}
	case *gh.WatchEvent:
		out.Action = "starred"
	case *gh.ForkEvent:
		out.Action = "forked"
		out.Detail = p.GetForkee().GetFullName()
	}
	return out
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
