package screening

import (
	"fmt"
	"net/url"
)

// External job-board search templates keyed by site name. The role is
// substituted as a query-escaped keyword.
var jobBoards = []struct {
	site     string
	template string
}{
	{"LinkedIn", "https://www.linkedin.com/jobs/search/?keywords=%s"},
	{"Indeed", "https://www.indeed.com/jobs?q=%s"},
	{"Naukri", "https://www.naukri.com/jobs?k=%s"},
	{"Glassdoor", "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=%s"},
}

// jobLinksFor builds search links for one role.
func jobLinksFor(role string) JobOpportunities {
	links := make([]JobLink, 0, len(jobBoards))
	q := url.QueryEscape(role)
	for _, b := range jobBoards {
		links = append(links, JobLink{Site: b.site, URL: fmt.Sprintf(b.template, q)})
	}
	return JobOpportunities{Role: role, Links: links}
}
