package social

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

// Document is one renderable screen.
type Document interface {
	render(opts RenderOptions, s styles) string
}

type Feed struct {
	Query   domain.FeedQuery
	Posts   []domain.Post
	HasMore bool
}

type Thread struct {
	PostID   domain.PostID
	Comments []domain.Comment
}

type Directory struct {
	Users []domain.User
}

type Whoami struct {
	Session   domain.Session
	Profile   string
	ExpiresAt time.Time
}

type Notices struct {
	Items []domain.Notification
}

func (f Feed) render(opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(feedTitle(f.Query)),
		s.header.Render(feedHeader(f)),
	}

	if len(f.Posts) == 0 {
		lines = append(lines, s.empty.Render("No posts yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, post := range f.Posts {
		lines = append(lines, s.section.Render(renderPost(post, opts, s)))
	}

	if f.HasMore {
		lines = append(lines, s.section.Render(s.empty.Render(fmt.Sprintf("More posts available: --page %d", nextPage(f.Query)))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func feedTitle(query domain.FeedQuery) string {
	switch query.View {
	case domain.FeedViewFollowing:
		return "Following"
	case domain.FeedViewProfile:
		return "Posts by " + query.Username
	default:
		return "Home feed"
	}
}

func feedHeader(f Feed) string {
	header := fmt.Sprintf("posts: %d", len(f.Posts))
	if f.Query.Page > 1 {
		header += fmt.Sprintf(" (through page %d)", f.Query.Page)
	}
	return header
}

func nextPage(query domain.FeedQuery) int {
	if query.Page < 1 {
		return 2
	}
	return query.Page + 1
}

func renderPost(post domain.Post, opts RenderOptions, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.author.Render(post.Author.Username),
			" ",
			s.handle.Render(fmt.Sprintf("post #%d", post.ID)),
		),
	}

	if content := strings.TrimSpace(post.Content); content != "" {
		parts = append(parts, s.body.Render(content))
	}
	if post.Image != "" {
		parts = append(parts, s.meta.Render("image: "+post.Image))
	}

	meta := fmt.Sprintf("%s  %s", plural(post.LikesCount, "like"), plural(post.CommentsCount, "comment"))
	if age := formatAge(post.CreatedAt, opts.Now); age != "" {
		meta += "  " + age
	}
	metaLine := s.meta.Render(meta)
	if post.IsLiked {
		metaLine = lipgloss.JoinHorizontal(lipgloss.Top, metaLine, " ", s.liked.Render("[liked]"))
	}
	parts = append(parts, metaLine)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (t Thread) render(opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Comments on post #%d", t.PostID)),
		s.header.Render(fmt.Sprintf("comments: %d", countComments(t.Comments))),
	}

	if len(t.Comments) == 0 {
		lines = append(lines, s.empty.Render("No comments yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, comment := range t.Comments {
		lines = append(lines, s.section.Render(renderComment(comment, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderComment(comment domain.Comment, opts RenderOptions, s styles) string {
	head := lipgloss.JoinHorizontal(lipgloss.Top,
		s.author.Render(comment.Author.Username),
		" ",
		s.handle.Render(fmt.Sprintf("#%d", comment.ID)),
	)
	if age := formatAge(comment.CreatedAt, opts.Now); age != "" {
		head = lipgloss.JoinHorizontal(lipgloss.Top, head, " ", s.meta.Render(age))
	}

	parts := []string{head, s.body.Render(comment.Content)}
	for _, reply := range comment.Replies {
		parts = append(parts, s.reply.Render(renderComment(reply, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func countComments(comments []domain.Comment) int {
	total := len(comments)
	for _, comment := range comments {
		total += countComments(comment.Replies)
	}
	return total
}

func (d Directory) render(_ RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Developers"),
		s.header.Render(fmt.Sprintf("users: %d", len(d.Users))),
	}

	if len(d.Users) == 0 {
		lines = append(lines, s.empty.Render("No users found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, user := range d.Users {
		lines = append(lines, s.section.Render(renderUser(user, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderUser(user domain.User, s styles) string {
	head := lipgloss.JoinHorizontal(lipgloss.Top,
		s.author.Render(user.Username),
		" ",
		s.handle.Render(fmt.Sprintf("#%d", user.ID)),
	)
	if user.IsFollowed {
		head = lipgloss.JoinHorizontal(lipgloss.Top, head, " ", s.followed.Render("[following]"))
	}

	parts := []string{head}
	if user.Bio != "" {
		parts = append(parts, s.body.Render(user.Bio))
	}
	if user.Location != "" {
		parts = append(parts, s.meta.Render("location: "+user.Location))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (w Whoami) render(opts RenderOptions, s styles) string {
	if !w.Session.IsAuthenticated || w.Session.User == nil {
		return s.empty.Render("Not signed in. Run `dc auth login` to sign in.")
	}

	user := w.Session.User
	lines := []string{
		s.title.Render(fmt.Sprintf("Signed in as %s (#%d)", user.Username, user.ID)),
	}

	details := [][2]string{
		{"email", user.Email},
		{"bio", user.Bio},
		{"location", user.Location},
		{"birth date", user.BirthDate},
		{"profile", w.Profile},
	}
	for _, detail := range details {
		if detail[1] == "" {
			continue
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(detail[0]+":"), " ", s.body.Render(detail[1])))
	}

	if line := expiryLine(w.ExpiresAt, opts.Now, s); line != "" {
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func expiryLine(expiresAt, now time.Time, s styles) string {
	if expiresAt.IsZero() {
		return ""
	}
	if now.IsZero() {
		return s.meta.Render("access expires " + expiresAt.Format(time.RFC3339))
	}
	if !now.Before(expiresAt) {
		return s.warning.Render("access expired (renewed on next request)")
	}

	return s.meta.Render("access expires in " + formatDuration(expiresAt.Sub(now)))
}

func (n Notices) render(_ RenderOptions, s styles) string {
	lines := make([]string, 0, len(n.Items))
	for _, item := range n.Items {
		switch item.Type {
		case domain.NotificationError:
			lines = append(lines, s.failure.Render("error:")+" "+item.Message)
		default:
			lines = append(lines, s.success.Render("ok:")+" "+item.Message)
		}
	}

	return strings.Join(lines, "\n")
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return ""
	}
	if now.IsZero() {
		return at.Format("2006-01-02 15:04")
	}

	elapsed := now.Sub(at)
	if elapsed < time.Minute {
		return "just now"
	}

	return formatDuration(elapsed) + " ago"
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "less than a minute"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
