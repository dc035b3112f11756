package depot

import (
	"github.com/octohelm/courier/pkg/courier"
	"github.com/octohelm/courier/pkg/courierhttp"
)

var R = courierhttp.GroupRouter("/v1").With(
	courier.NewRouter(&ListOriginPackages{}),
	courier.NewRouter(&ListPackages{}),
	courier.NewRouter(&ListPackageReleases{}),
	courier.NewRouter(&ShowLatestPackage{}),
	courier.NewRouter(&ShowLatestPackageRelease{}),
	courier.NewRouter(&ShowPackage{}),
	courier.NewRouter(&UploadPackage{}),
	courier.NewRouter(&DownloadPackage{}),

	courier.NewRouter(&ListViews{}),
	courier.NewRouter(&CreateView{}),
	courier.NewRouter(&PromotePackage{}),
	courier.NewRouter(&ListViewOriginPackages{}),
	courier.NewRouter(&ListViewPackages{}),
	courier.NewRouter(&ListViewPackageReleases{}),
	courier.NewRouter(&ShowLatestViewPackage{}),
	courier.NewRouter(&ShowLatestViewPackageRelease{}),
	courier.NewRouter(&ShowViewPackage{}),

	courier.NewRouter(&ListOriginKeys{}),
	courier.NewRouter(&DownloadLatestOriginKey{}),
	courier.NewRouter(&DownloadOriginKey{}),
	courier.NewRouter(&UploadOriginKey{}),
	courier.NewRouter(&UploadOriginSecretKey{}),

	courier.NewRouter(&CreateOrigin{}),
	courier.NewRouter(&DeleteOrigin{}),
	courier.NewRouter(&AddOriginMember{}),
	courier.NewRouter(&RemoveOriginMember{}),
)
