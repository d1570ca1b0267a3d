// Package github talks to the GitHub REST API on behalf of gup: finding the
// open pull request for a branch, building compare URLs and reading the
// check runs of a commit.
package github
