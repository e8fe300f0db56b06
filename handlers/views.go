package handlers

import (
	"net/http"
	"net/url"
	"time"

	adminRepo "salonadmin/database/repository/admin"
	"salonadmin/middleware"
	"salonadmin/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BannerView is the data of the "banners" template.
type BannerView struct {
	Items     []notification.Banner
	TTLMillis int64
}

// QuickFill is a login shortcut for a configured admin id.
type QuickFill struct {
	Role string
	ID   string
}

// viewSupport is shared by the handlers that render HTML.
type viewSupport struct {
	Configs   adminRepo.AdminConfigRepository
	Banners   notification.BannerService
	BannerTTL time.Duration
	Logger    *zap.Logger
}

func (v viewSupport) bannerView(c *gin.Context) BannerView {
	view := BannerView{TTLMillis: v.BannerTTL.Milliseconds()}
	if v.Banners == nil {
		return view
	}
	items, err := v.Banners.Pending(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		v.Logger.Warn("Failed to read banners", zap.Error(err))
		return view
	}
	view.Items = items
	return view
}

func (v viewSupport) push(c *gin.Context, banner notification.Banner) {
	if v.Banners == nil {
		return
	}
	if err := v.Banners.Push(c.Request.Context(), middleware.SessionID(c), banner); err != nil {
		v.Logger.Warn("Failed to push banner", zap.String("message", banner.Message), zap.Error(err))
	}
}

func (v viewSupport) quickFill(c *gin.Context) []QuickFill {
	cfg, err := v.Configs.Get(c.Request.Context())
	if err != nil {
		v.Logger.Warn("Failed to read admin config for quick fill", zap.Error(err))
		return nil
	}
	if cfg == nil {
		return nil
	}
	var out []QuickFill
	for _, e := range cfg.Entries() {
		out = append(out, QuickFill{Role: string(e.Role), ID: e.ID})
	}
	return out
}

func (v viewSupport) renderLogin(c *gin.Context, status int, userID, errMsg string) {
	c.HTML(status, "login.html", gin.H{
		"Banners":   v.bannerView(c),
		"UserID":    userID,
		"Error":     errMsg,
		"QuickFill": v.quickFill(c),
	})
}

// backToPanel redirects to the admin view, keeping the filter the form was posted from.
func backToPanel(c *gin.Context) {
	query := url.Values{}
	if s := c.PostForm("search"); s != "" {
		query.Set("search", s)
	}
	if s := c.PostForm("filterStatus"); s != "" {
		query.Set("status", s)
	}
	if s := c.PostForm("filterDate"); s != "" {
		query.Set("date", s)
	}
	target := "/"
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}
