package gateway

// Query templates for the six collectors. Every template declares
// $first and $after so the paginator can drive the cursor purely
// through variables. Nested sub-lists (reviews, closing issue
// references, comments, review threads) are bounded by real-world
// volume per item and use small fixed page sizes instead of their own
// cursors.

// MergedPRsQuery lists merged pull requests with the data needed for
// author, review, and closing-issue credit.
const MergedPRsQuery = `
query($owner: String!, $name: String!, $first: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    pullRequests(states: [MERGED], first: $first, after: $after, orderBy: {field: UPDATED_AT, direction: DESC}) {
      edges {
        cursor
        node {
          author { login }
          mergedAt
          additions
          deletions
          reviews(first: 50) {
            nodes {
              author { login }
              submittedAt
            }
          }
          closingIssuesReferences(first: 10) {
            nodes {
              author { login }
            }
          }
        }
      }
    }
  }
}`

// OpenPRsQuery lists currently open pull requests.
const OpenPRsQuery = `
query($owner: String!, $name: String!, $first: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    pullRequests(states: [OPEN], first: $first, after: $after, orderBy: {field: CREATED_AT, direction: DESC}) {
      edges {
        cursor
        node {
          createdAt
          state
        }
      }
    }
  }
}`

// ClosedIssuesQuery lists closed issues with author and assignees for
// the first-assignee fallback credit.
const ClosedIssuesQuery = `
query($owner: String!, $name: String!, $first: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    issues(states: [CLOSED], first: $first, after: $after, orderBy: {field: UPDATED_AT, direction: DESC}) {
      edges {
        cursor
        node {
          author { login }
          closedAt
          assignees(first: 10) {
            nodes { login }
          }
        }
      }
    }
  }
}`

// NewIssuesQuery lists issues by creation time; only the repository
// counter consumes it.
const NewIssuesQuery = `
query($owner: String!, $name: String!, $first: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    issues(first: $first, after: $after, orderBy: {field: CREATED_AT, direction: DESC}) {
      edges {
        cursor
        node {
          createdAt
        }
      }
    }
  }
}`

// CommitsQuery walks the commit history of one branch, which is always
// the default branch of the repository.
const CommitsQuery = `
query($owner: String!, $name: String!, $branch: String!, $first: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    ref(qualifiedName: $branch) {
      target {
        ... on Commit {
          history(first: $first, after: $after) {
            edges {
              cursor
              node {
                committedDate
                author {
                  user { login }
                }
              }
            }
          }
        }
      }
    }
  }
}`

// PRCommentsQuery lists pull requests with their discussion comments
// and inline review-thread comments.
const PRCommentsQuery = `
query($owner: String!, $name: String!, $first: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    pullRequests(first: $first, after: $after, orderBy: {field: UPDATED_AT, direction: DESC}) {
      edges {
        cursor
        node {
          comments(first: 100) {
            nodes {
              author { login }
              createdAt
            }
          }
          reviewThreads(first: 50) {
            nodes {
              comments(first: 100) {
                nodes {
                  author { login }
                  createdAt
                }
              }
            }
          }
        }
      }
    }
  }
}`

// IssueCommentsQuery lists issues with their comments.
const IssueCommentsQuery = `
query($owner: String!, $name: String!, $first: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    issues(first: $first, after: $after, orderBy: {field: UPDATED_AT, direction: DESC}) {
      edges {
        cursor
        node {
          comments(first: 100) {
            nodes {
              author { login }
              createdAt
            }
          }
        }
      }
    }
  }
}`
