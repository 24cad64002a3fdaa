// Package paginate drains page-based listing endpoints into a single slice.
//
// Pages are requested strictly in order starting at page 1. The loop stops as
// soon as a page comes back shorter than the requested page size, so a listing
// whose length is an exact multiple of the page size costs one extra (empty)
// request.
//
// # Usage
//
//	projects, err := paginate.FetchAll(ctx, "projects", paginate.DefaultPageSize,
//	    func(ctx context.Context, page, perPage int) ([]wistia.Project, error) {
//	        return client.ListProjects(ctx, page, perPage)
//	    })
package paginate
