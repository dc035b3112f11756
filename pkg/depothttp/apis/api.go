package apis

import (
	"github.com/octohelm/courier/pkg/courier"
	"github.com/octohelm/courier/pkg/courierhttp"
	"github.com/octohelm/courier/pkg/courierhttp/handler/httprouter"

	"github.com/octohelm/depotkit/pkg/depothttp/apis/depot"
)

var R = courierhttp.GroupRouter("/").With(

	courierhttp.GroupRouter("/api/depotkit").With(
		courier.NewRouter(&httprouter.OpenAPI{}),
		courier.NewRouter(&httprouter.OpenAPIView{}),
	),

	depot.R,
)
