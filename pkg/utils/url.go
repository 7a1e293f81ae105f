package utils

import (
	"net/url"
	"strconv"
)

// ToAbsoluteURL converts a relative URL to an absolute URL given a base URL.
func ToAbsoluteURL(base *url.URL, relative string) (string, error) {
	relURL, err := url.Parse(relative)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(relURL).String(), nil
}

// PageURL appends the results-page parameter to the query URL.
func PageURL(queryURL string, page int) string {
	return queryURL + "?page=" + strconv.Itoa(page)
}
