package gateway

import (
	"context"
	"strings"
)

// Source is the pagination capability collectors depend on. Having the
// collectors hold this interface instead of the concrete client keeps
// them testable against a fake transport.
type Source interface {
	Paginate(ctx context.Context, query string, variables map[string]any, pageSize int, path string) ([]map[string]any, error)
}

// Paginate drains every page of the edge list located at the
// dot-separated path inside the query result, and returns all node
// payloads in order.
//
// Every query template declares $first and $after, so pagination is
// driven purely through variables: the cursor starts absent and
// advances to the last edge's cursor after each page. The loop stops
// when a page comes back empty or its last edge carries no cursor.
//
// Upstream ordering (by update or creation time) never matches the
// field the callers filter on (merge time, close time, ...), so there
// is no early termination: the full history is always traversed and
// windowing happens afterwards in the collectors.
func (c *Client) Paginate(ctx context.Context, query string, variables map[string]any, pageSize int, path string) ([]map[string]any, error) {
	var nodes []map[string]any
	cursor := ""

	for {
		vars := make(map[string]any, len(variables)+2)
		for k, v := range variables {
			vars[k] = v
		}
		vars["first"] = pageSize
		if cursor == "" {
			vars["after"] = nil
		} else {
			vars["after"] = cursor
		}

		data, err := c.Execute(ctx, query, vars)
		if err != nil {
			return nil, err
		}

		edges := edgesAt(data, path)
		if len(edges) == 0 {
			break
		}
		for _, edge := range edges {
			if node, ok := edge["node"].(map[string]any); ok {
				nodes = append(nodes, node)
			}
		}

		last := edges[len(edges)-1]
		next, _ := last["cursor"].(string)
		if next == "" {
			break
		}
		cursor = next
		c.logger.Printf("  Fetched %d nodes so far, requesting next page...", len(nodes))
	}

	return nodes, nil
}

// edgesAt walks data through a dot-separated field path and returns the
// "edges" list of the final field. Any missing or mistyped segment
// yields an empty list, which the caller treats as pagination
// termination rather than an error.
func edgesAt(data map[string]any, path string) []map[string]any {
	current := data
	for _, field := range strings.Split(path, ".") {
		next, ok := current[field].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}

	raw, ok := current["edges"].([]any)
	if !ok {
		return nil
	}
	edges := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if edge, ok := e.(map[string]any); ok {
			edges = append(edges, edge)
		}
	}
	return edges
}
