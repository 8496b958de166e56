package models

import "time"

type Comment struct {
	ID            string    `json:"_id"`
	Content       string    `json:"content"`
	Video         string    `json:"video,omitempty"`
	Owner         *Owner    `json:"owner,omitempty"`
	ParentComment string    `json:"parentComment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (c *Comment) AuthorName() string {
	if c.Owner == nil || c.Owner.Username == "" {
		return "User"
	}
	return c.Owner.Username
}

// Thread is a comment with its replies, in arrival order.
type Thread struct {
	Comment
	Replies []*Thread
}

// BuildThreads nests replies under their parents. Order of the input is
// preserved at every level. A reply whose parent is not in comments (for
// example, on another page) is shown at the top level.
func BuildThreads(comments []Comment) []*Thread {
	nodes := make(map[string]*Thread, len(comments))
	ordered := make([]*Thread, 0, len(comments))
	for _, c := range comments {
		n := &Thread{Comment: c}
		ordered = append(ordered, n)
		if c.ID != "" {
			nodes[c.ID] = n
		}
	}

	roots := make([]*Thread, 0, len(comments))
	for _, n := range ordered {
		parent, ok := nodes[n.ParentComment]
		if n.ParentComment == "" || !ok || reachesSelf(n, nodes) {
			roots = append(roots, n)
			continue
		}
		parent.Replies = append(parent.Replies, n)
	}
	return roots
}

// reachesSelf reports whether following parent links from n leads back to n.
func reachesSelf(n *Thread, nodes map[string]*Thread) bool {
	cur := n
	for range len(nodes) {
		next, ok := nodes[cur.ParentComment]
		if !ok {
			return false
		}
		if next == n {
			return true
		}
		cur = next
	}
	return false
}

// NewComment is the body of a comment or reply.
type NewComment struct {
	Content       string `json:"content"`
	ParentComment string `json:"parentComment,omitempty"`
}
