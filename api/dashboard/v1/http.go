package v1

import (
	"context"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationDashboardTopPopular          = "/api.dashboard.v1.Dashboard/TopPopular"
	OperationDashboardBestRated           = "/api.dashboard.v1.Dashboard/BestRated"
	OperationDashboardNewReleases         = "/api.dashboard.v1.Dashboard/NewReleases"
	OperationDashboardBoxOffice           = "/api.dashboard.v1.Dashboard/BoxOffice"
	OperationDashboardGenreDistribution   = "/api.dashboard.v1.Dashboard/GenreDistribution"
	OperationDashboardRuntimeDistribution = "/api.dashboard.v1.Dashboard/RuntimeDistribution"
	OperationDashboardRatingVotes         = "/api.dashboard.v1.Dashboard/RatingVotes"
	OperationDashboardSearchMovies        = "/api.dashboard.v1.Dashboard/SearchMovies"
	OperationDashboardGetMovie            = "/api.dashboard.v1.Dashboard/GetMovie"
	OperationDashboardStoreStatus         = "/api.dashboard.v1.Dashboard/StoreStatus"
	OperationDashboardHealthCheck         = "/api.dashboard.v1.Dashboard/HealthCheck"
)

// DashboardHTTPServer is the server API for the Dashboard service.
type DashboardHTTPServer interface {
	TopPopular(context.Context, *TopPopularRequest) (*TopPopularReply, error)
	BestRated(context.Context, *BestRatedRequest) (*BestRatedReply, error)
	NewReleases(context.Context, *NewReleasesRequest) (*NewReleasesReply, error)
	BoxOffice(context.Context, *BoxOfficeRequest) (*BoxOfficeReply, error)
	GenreDistribution(context.Context, *GenreDistributionRequest) (*GenreDistributionReply, error)
	RuntimeDistribution(context.Context, *RuntimeDistributionRequest) (*RuntimeDistributionReply, error)
	RatingVotes(context.Context, *RatingVotesRequest) (*RatingVotesReply, error)
	SearchMovies(context.Context, *SearchMoviesRequest) (*SearchMoviesReply, error)
	GetMovie(context.Context, *GetMovieRequest) (*GetMovieReply, error)
	StoreStatus(context.Context, *StoreStatusRequest) (*StoreStatusReply, error)
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckReply, error)
}

// RegisterDashboardHTTPServer mounts the Dashboard routes on an HTTP server.
// The literal /movies/search route must stay ahead of the /movies/{title:.*}
// catch-all; the title pattern spans path separators so titles containing a
// slash stay addressable.
func RegisterDashboardHTTPServer(s *khttp.Server, srv DashboardHTTPServer) {
	r := s.Route("/")
	r.GET("/api/v1/dashboard/popular", handleDashboardTopPopular(srv))
	r.GET("/api/v1/dashboard/best-rated", handleDashboardBestRated(srv))
	r.GET("/api/v1/dashboard/new-releases", handleDashboardNewReleases(srv))
	r.GET("/api/v1/dashboard/box-office", handleDashboardBoxOffice(srv))
	r.GET("/api/v1/dashboard/genres", handleDashboardGenreDistribution(srv))
	r.GET("/api/v1/dashboard/runtimes", handleDashboardRuntimeDistribution(srv))
	r.GET("/api/v1/dashboard/rating-votes", handleDashboardRatingVotes(srv))
	r.GET("/api/v1/movies/search", handleDashboardSearchMovies(srv))
	r.GET("/api/v1/movies/{title:.*}", handleDashboardGetMovie(srv))
	r.GET("/api/v1/status", handleDashboardStoreStatus(srv))
	r.GET("/healthz", handleDashboardHealthCheck(srv))
}

func handleDashboardTopPopular(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in TopPopularRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationDashboardTopPopular)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.TopPopular(ctx, req.(*TopPopularRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*TopPopularReply))
	}
}

func handleDashboardBestRated(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in BestRatedRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationDashboardBestRated)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.BestRated(ctx, req.(*BestRatedRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*BestRatedReply))
	}
}

func handleDashboardNewReleases(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in NewReleasesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationDashboardNewReleases)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.NewReleases(ctx, req.(*NewReleasesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*NewReleasesReply))
	}
}

func handleDashboardBoxOffice(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in BoxOfficeRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationDashboardBoxOffice)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.BoxOffice(ctx, req.(*BoxOfficeRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*BoxOfficeReply))
	}
}

func handleDashboardGenreDistribution(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in GenreDistributionRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationDashboardGenreDistribution)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GenreDistribution(ctx, req.(*GenreDistributionRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*GenreDistributionReply))
	}
}

func handleDashboardRuntimeDistribution(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in RuntimeDistributionRequest
		khttp.SetOperation(ctx, OperationDashboardRuntimeDistribution)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.RuntimeDistribution(ctx, req.(*RuntimeDistributionRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*RuntimeDistributionReply))
	}
}

func handleDashboardRatingVotes(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in RatingVotesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationDashboardRatingVotes)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.RatingVotes(ctx, req.(*RatingVotesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*RatingVotesReply))
	}
}

func handleDashboardSearchMovies(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in SearchMoviesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationDashboardSearchMovies)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.SearchMovies(ctx, req.(*SearchMoviesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*SearchMoviesReply))
	}
}

func handleDashboardGetMovie(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in GetMovieRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationDashboardGetMovie)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetMovie(ctx, req.(*GetMovieRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*GetMovieReply))
	}
}

func handleDashboardStoreStatus(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in StoreStatusRequest
		khttp.SetOperation(ctx, OperationDashboardStoreStatus)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.StoreStatus(ctx, req.(*StoreStatusRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*StoreStatusReply))
	}
}

func handleDashboardHealthCheck(srv DashboardHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in HealthCheckRequest
		khttp.SetOperation(ctx, OperationDashboardHealthCheck)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.HealthCheck(ctx, req.(*HealthCheckRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*HealthCheckReply))
	}
}
