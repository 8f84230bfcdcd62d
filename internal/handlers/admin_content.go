// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"devportfolio/internal/models"
)

var (
	servicesResource = resourceMeta{
		Slug: "services", Title: "Services", Singular: "Service",
		CanCreate: true, CanDelete: true,
	}
	projectsResource = resourceMeta{
		Slug: "projects", Title: "Projects", Singular: "Project",
		CanCreate: true, CanDelete: true,
	}
	imagesResource = resourceMeta{
		Slug: "images", Title: "Portfolio Images", Singular: "Image",
		CanCreate: true, CanDelete: true,
	}
	testimonialsResource = resourceMeta{
		Slug: "testimonials", Title: "Testimonials", Singular: "Testimonial",
		CanCreate: true, CanDelete: true,
	}
	technologiesResource = resourceMeta{
		Slug: "technologies", Title: "Technologies", Singular: "Technology",
		CanCreate: true, CanDelete: true,
	}
)

// --- Services ---

func (a *Admin) ServicesList(w http.ResponseWriter, r *http.Request) {
	services, err := a.services.List()
	if err != nil {
		slog.Error("list services failed", "error", err)
	}

	rows := make([]listRow, 0, len(services))
	for _, s := range services {
		rows = append(rows, listRow{
			ID: s.ID.String(),
			Cells: []listCell{
				imageCell(s.FeaturedImage),
				textCell(s.Name),
				textCell(s.DisplayPrice()),
				textCell(strconv.Itoa(s.SortOrder)),
				boolCell(s.IsActive),
				boolCell(s.IsFeatured),
			},
		})
	}
	a.renderList(w, r, servicesResource, []string{"", "Name", "Price", "Order", "Active", "Featured"}, rows)
}

// serviceFields builds the form fields for a service, pre-filled from svc.
func serviceFields(svc *models.Service) []formField {
	return []formField{
		{Name: "name", Label: "Name", Widget: "text", Value: svc.Name, Required: true},
		{Name: "description", Label: "Description", Widget: "textarea", Value: svc.Description, Required: true},
		{Name: "price", Label: "Price (USD)", Widget: "price", Value: floatVal(svc.Price)},
		{Name: "price_description", Label: "Price Description", Widget: "text", Value: svc.PriceDescription, Help: "Shown under the price, e.g. \"starting at\"."},
		{Name: "icon", Label: "Icon", Widget: "text", Value: svc.Icon, Help: "FontAwesome class, e.g. \"fas fa-code\"."},
		{Name: "featured_image", Label: "Featured Image", Widget: "image", Value: svc.FeaturedImage},
		{Name: "background_image", Label: "Background Image", Widget: "image", Value: svc.BackgroundImage},
		{Name: "sort_order", Label: "Sort Order", Widget: "number", Value: strconv.Itoa(svc.SortOrder)},
		{Name: "is_active", Label: "Active", Widget: "checkbox", Checked: svc.IsActive},
		{Name: "is_featured", Label: "Featured on homepage", Widget: "checkbox", Checked: svc.IsFeatured},
	}
}

// applyServiceForm fills svc from the submitted form, returning validation
// errors.
func applyServiceForm(r *http.Request, svc *models.Service) []string {
	var errs []string
	svc.Name = r.PostFormValue("name")
	svc.Description = r.PostFormValue("description")
	svc.PriceDescription = r.PostFormValue("price_description")
	svc.Icon = r.PostFormValue("icon")
	svc.FeaturedImage = r.PostFormValue("featured_image")
	svc.BackgroundImage = r.PostFormValue("background_image")
	svc.SortOrder = formInt(r, "sort_order", 0)
	svc.IsActive = formBool(r, "is_active")
	svc.IsFeatured = formBool(r, "is_featured")

	price, ok := formFloatPtr(r, "price")
	if !ok {
		errs = append(errs, "Price must be a decimal number.")
	} else {
		svc.Price = price
	}
	errs = append(errs, validateService(svc)...)
	return errs
}

func (a *Admin) ServiceNew(w http.ResponseWriter, r *http.Request) {
	a.renderForm(w, r, servicesResource, "/admin/services/new", true,
		serviceFields(&models.Service{IsActive: true}), nil)
}

func (a *Admin) ServiceCreate(w http.ResponseWriter, r *http.Request) {
	var svc models.Service
	if errs := applyServiceForm(r, &svc); len(errs) > 0 {
		a.renderForm(w, r, servicesResource, "/admin/services/new", true, serviceFields(&svc), errs)
		return
	}
	if _, err := a.services.Create(&svc); err != nil {
		slog.Error("create service failed", "error", err)
		a.renderForm(w, r, servicesResource, "/admin/services/new", true, serviceFields(&svc),
			[]string{"Failed to save the service."})
		return
	}
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/services/", http.StatusSeeOther)
}

func (a *Admin) ServiceEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	svc, err := a.services.FindByID(id)
	if err != nil || svc == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	a.renderForm(w, r, servicesResource, "/admin/services/"+id.String(), false, serviceFields(svc), nil)
}

func (a *Admin) ServiceUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	svc, err := a.services.FindByID(id)
	if err != nil || svc == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if errs := applyServiceForm(r, svc); len(errs) > 0 {
		a.renderForm(w, r, servicesResource, "/admin/services/"+id.String(), false, serviceFields(svc), errs)
		return
	}
	if err := a.services.Update(svc); err != nil {
		slog.Error("update service failed", "error", err, "id", id)
		a.renderForm(w, r, servicesResource, "/admin/services/"+id.String(), false, serviceFields(svc),
			[]string{"Failed to save the service."})
		return
	}
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/services/", http.StatusSeeOther)
}

func (a *Admin) ServiceDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := a.services.Delete(id); err != nil {
		slog.Error("delete service failed", "error", err, "id", id)
	} else {
		a.invalidatePages(r)
	}
	http.Redirect(w, r, "/admin/services/", http.StatusSeeOther)
}

// --- Projects ---

func (a *Admin) ProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := a.projects.List()
	if err != nil {
		slog.Error("list projects failed", "error", err)
	}

	rows := make([]listRow, 0, len(projects))
	for _, p := range projects {
		completed := p.CompletedIn()
		if completed == "" {
			completed = "—"
		}
		rows = append(rows, listRow{
			ID: p.ID.String(),
			Cells: []listCell{
				imageCell(p.Image),
				textCell(p.Title),
				textCell(p.ClientName),
				textCell(completed),
				textCell(strconv.Itoa(p.SortOrder)),
				boolCell(p.IsFeatured),
			},
		})
	}
	a.renderList(w, r, projectsResource, []string{"", "Title", "Client", "Completed", "Order", "Featured"}, rows)
}

// projectFields builds the form fields for a project. The service and
// gallery multiselects are populated from the current catalog.
func (a *Admin) projectFields(p *models.Project) []formField {
	selectedServices := make(map[string]bool, len(p.Services))
	for _, s := range p.Services {
		selectedServices[s.ID.String()] = true
	}
	var serviceOpts []formOption
	if all, err := a.services.List(); err == nil {
		for _, s := range all {
			serviceOpts = append(serviceOpts, formOption{
				Value: s.ID.String(), Label: s.Name, Selected: selectedServices[s.ID.String()],
			})
		}
	}

	selectedImages := make(map[string]bool, len(p.Gallery))
	for _, img := range p.Gallery {
		selectedImages[img.ID.String()] = true
	}
	var galleryOpts []formOption
	if all, err := a.images.List(); err == nil {
		for _, img := range all {
			galleryOpts = append(galleryOpts, formOption{
				Value: img.ID.String(), Label: img.Title, Selected: selectedImages[img.ID.String()],
			})
		}
	}

	return []formField{
		{Name: "title", Label: "Title", Widget: "text", Value: p.Title, Required: true},
		{Name: "description", Label: "Description", Widget: "textarea", Value: p.Description, Required: true},
		{Name: "image", Label: "Cover Image", Widget: "image", Value: p.Image},
		{Name: "client_name", Label: "Client", Widget: "text", Value: p.ClientName},
		{Name: "project_url", Label: "Live URL", Widget: "url", Value: p.ProjectURL},
		{Name: "github_url", Label: "GitHub URL", Widget: "url", Value: p.GithubURL},
		{Name: "completion_date", Label: "Completion Date", Widget: "date", Value: dateVal(p.CompletionDate)},
		{Name: "services", Label: "Services", Widget: "multiselect", Options: serviceOpts},
		{Name: "gallery", Label: "Gallery Images", Widget: "multiselect", Options: galleryOpts},
		{Name: "sort_order", Label: "Sort Order", Widget: "number", Value: strconv.Itoa(p.SortOrder)},
		{Name: "is_featured", Label: "Featured on homepage", Widget: "checkbox", Checked: p.IsFeatured},
	}
}

// applyProjectForm fills p from the submitted form, returning validation
// errors. Associations are parsed but stored separately by the caller.
func applyProjectForm(r *http.Request, p *models.Project) []string {
	var errs []string
	p.Title = r.PostFormValue("title")
	p.Description = r.PostFormValue("description")
	p.Image = r.PostFormValue("image")
	p.ClientName = r.PostFormValue("client_name")
	p.ProjectURL = r.PostFormValue("project_url")
	p.GithubURL = r.PostFormValue("github_url")
	p.SortOrder = formInt(r, "sort_order", 0)
	p.IsFeatured = formBool(r, "is_featured")

	date, ok := formDatePtr(r, "completion_date")
	if !ok {
		errs = append(errs, "Completion date must be a valid date.")
	} else {
		p.CompletionDate = date
	}
	errs = append(errs, validateProject(p)...)
	return errs
}

// saveProjectAssociations persists the service and gallery links from the
// form onto an existing project row.
func (a *Admin) saveProjectAssociations(r *http.Request, p *models.Project) {
	if err := a.projects.SetServices(p.ID, formUUIDs(r, "services")); err != nil {
		slog.Error("set project services failed", "error", err, "id", p.ID)
	}
	if err := a.projects.SetGallery(p.ID, formUUIDs(r, "gallery")); err != nil {
		slog.Error("set project gallery failed", "error", err, "id", p.ID)
	}
}

func (a *Admin) ProjectNew(w http.ResponseWriter, r *http.Request) {
	a.renderForm(w, r, projectsResource, "/admin/projects/new", true,
		a.projectFields(&models.Project{}), nil)
}

func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if errs := applyProjectForm(r, &p); len(errs) > 0 {
		a.renderForm(w, r, projectsResource, "/admin/projects/new", true, a.projectFields(&p), errs)
		return
	}
	created, err := a.projects.Create(&p)
	if err != nil {
		slog.Error("create project failed", "error", err)
		a.renderForm(w, r, projectsResource, "/admin/projects/new", true, a.projectFields(&p),
			[]string{"Failed to save the project."})
		return
	}
	a.saveProjectAssociations(r, created)
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/projects/", http.StatusSeeOther)
}

func (a *Admin) ProjectEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	p, err := a.projects.FindByID(id)
	if err != nil || p == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if p.Services, err = a.projects.ServicesFor(id); err != nil {
		slog.Error("load project services failed", "error", err, "id", id)
	}
	if p.Gallery, err = a.projects.GalleryFor(id); err != nil {
		slog.Error("load project gallery failed", "error", err, "id", id)
	}
	a.renderForm(w, r, projectsResource, "/admin/projects/"+id.String(), false, a.projectFields(p), nil)
}

func (a *Admin) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	p, err := a.projects.FindByID(id)
	if err != nil || p == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if errs := applyProjectForm(r, p); len(errs) > 0 {
		a.renderForm(w, r, projectsResource, "/admin/projects/"+id.String(), false, a.projectFields(p), errs)
		return
	}
	if err := a.projects.Update(p); err != nil {
		slog.Error("update project failed", "error", err, "id", id)
		a.renderForm(w, r, projectsResource, "/admin/projects/"+id.String(), false, a.projectFields(p),
			[]string{"Failed to save the project."})
		return
	}
	a.saveProjectAssociations(r, p)
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/projects/", http.StatusSeeOther)
}

func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := a.projects.Delete(id); err != nil {
		slog.Error("delete project failed", "error", err, "id", id)
	} else {
		a.invalidatePages(r)
	}
	http.Redirect(w, r, "/admin/projects/", http.StatusSeeOther)
}

// --- Portfolio Images ---

func (a *Admin) ImagesList(w http.ResponseWriter, r *http.Request) {
	images, err := a.images.List()
	if err != nil {
		slog.Error("list portfolio images failed", "error", err)
	}

	rows := make([]listRow, 0, len(images))
	for _, img := range images {
		rows = append(rows, listRow{
			ID: img.ID.String(),
			Cells: []listCell{
				imageCell(img.Image),
				textCell(img.Title),
				textCell(img.Category.Label()),
				textCell(strconv.Itoa(img.SortOrder)),
				boolCell(img.IsActive),
			},
		})
	}
	a.renderList(w, r, imagesResource, []string{"", "Title", "Category", "Order", "Active"}, rows)
}

func imageFields(img *models.PortfolioImage) []formField {
	opts := make([]formOption, 0, len(models.ImageCategories))
	for _, cat := range models.ImageCategories {
		opts = append(opts, formOption{
			Value: string(cat), Label: cat.Label(), Selected: cat == img.Category,
		})
	}
	return []formField{
		{Name: "title", Label: "Title", Widget: "text", Value: img.Title, Required: true},
		{Name: "image", Label: "Image", Widget: "image", Value: img.Image, Required: true},
		{Name: "category", Label: "Category", Widget: "select", Options: opts, Required: true},
		{Name: "description", Label: "Description", Widget: "textarea", Value: img.Description},
		{Name: "sort_order", Label: "Sort Order", Widget: "number", Value: strconv.Itoa(img.SortOrder)},
		{Name: "is_active", Label: "Active", Widget: "checkbox", Checked: img.IsActive},
	}
}

func applyImageForm(r *http.Request, img *models.PortfolioImage) []string {
	img.Title = r.PostFormValue("title")
	img.Image = r.PostFormValue("image")
	img.Category = models.ImageCategory(r.PostFormValue("category"))
	img.Description = r.PostFormValue("description")
	img.SortOrder = formInt(r, "sort_order", 0)
	img.IsActive = formBool(r, "is_active")
	return validateImage(img)
}

func (a *Admin) ImageNew(w http.ResponseWriter, r *http.Request) {
	a.renderForm(w, r, imagesResource, "/admin/images/new", true,
		imageFields(&models.PortfolioImage{IsActive: true, Category: models.ImageCategoryGeneral}), nil)
}

func (a *Admin) ImageCreate(w http.ResponseWriter, r *http.Request) {
	var img models.PortfolioImage
	if errs := applyImageForm(r, &img); len(errs) > 0 {
		a.renderForm(w, r, imagesResource, "/admin/images/new", true, imageFields(&img), errs)
		return
	}
	if _, err := a.images.Create(&img); err != nil {
		slog.Error("create portfolio image failed", "error", err)
		a.renderForm(w, r, imagesResource, "/admin/images/new", true, imageFields(&img),
			[]string{"Failed to save the image."})
		return
	}
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/images/", http.StatusSeeOther)
}

func (a *Admin) ImageEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	img, err := a.images.FindByID(id)
	if err != nil || img == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	a.renderForm(w, r, imagesResource, "/admin/images/"+id.String(), false, imageFields(img), nil)
}

func (a *Admin) ImageUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	img, err := a.images.FindByID(id)
	if err != nil || img == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if errs := applyImageForm(r, img); len(errs) > 0 {
		a.renderForm(w, r, imagesResource, "/admin/images/"+id.String(), false, imageFields(img), errs)
		return
	}
	if err := a.images.Update(img); err != nil {
		slog.Error("update portfolio image failed", "error", err, "id", id)
		a.renderForm(w, r, imagesResource, "/admin/images/"+id.String(), false, imageFields(img),
			[]string{"Failed to save the image."})
		return
	}
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/images/", http.StatusSeeOther)
}

func (a *Admin) ImageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := a.images.Delete(id); err != nil {
		slog.Error("delete portfolio image failed", "error", err, "id", id)
	} else {
		a.invalidatePages(r)
	}
	http.Redirect(w, r, "/admin/images/", http.StatusSeeOther)
}

// --- Testimonials ---

func (a *Admin) TestimonialsList(w http.ResponseWriter, r *http.Request) {
	testimonials, err := a.testimonials.List()
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
	}

	rows := make([]listRow, 0, len(testimonials))
	for _, t := range testimonials {
		rows = append(rows, listRow{
			ID: t.ID.String(),
			Cells: []listCell{
				imageCell(t.Image),
				textCell(t.ClientName),
				textCell(t.Company),
				textCell(strconv.Itoa(t.Rating) + "/5"),
				boolCell(t.IsFeatured),
			},
		})
	}
	a.renderList(w, r, testimonialsResource, []string{"", "Client", "Company", "Rating", "Featured"}, rows)
}

func testimonialFields(t *models.Testimonial) []formField {
	ratingOpts := make([]formOption, 0, models.MaxRating)
	for i := models.MinRating; i <= models.MaxRating; i++ {
		ratingOpts = append(ratingOpts, formOption{
			Value: strconv.Itoa(i), Label: strconv.Itoa(i), Selected: i == t.Rating,
		})
	}
	return []formField{
		{Name: "client_name", Label: "Client Name", Widget: "text", Value: t.ClientName, Required: true},
		{Name: "company", Label: "Company", Widget: "text", Value: t.Company},
		{Name: "content", Label: "Quote", Widget: "textarea", Value: t.Content, Required: true},
		{Name: "image", Label: "Client Photo", Widget: "image", Value: t.Image},
		{Name: "rating", Label: "Rating", Widget: "select", Options: ratingOpts},
		{Name: "sort_order", Label: "Sort Order", Widget: "number", Value: strconv.Itoa(t.SortOrder)},
		{Name: "is_featured", Label: "Featured on homepage", Widget: "checkbox", Checked: t.IsFeatured},
	}
}

func applyTestimonialForm(r *http.Request, t *models.Testimonial) []string {
	t.ClientName = r.PostFormValue("client_name")
	t.Company = r.PostFormValue("company")
	t.Content = r.PostFormValue("content")
	t.Image = r.PostFormValue("image")
	t.Rating = formInt(r, "rating", models.MaxRating)
	t.SortOrder = formInt(r, "sort_order", 0)
	t.IsFeatured = formBool(r, "is_featured")
	return validateTestimonial(t)
}

func (a *Admin) TestimonialNew(w http.ResponseWriter, r *http.Request) {
	a.renderForm(w, r, testimonialsResource, "/admin/testimonials/new", true,
		testimonialFields(&models.Testimonial{Rating: models.MaxRating}), nil)
}

func (a *Admin) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	var t models.Testimonial
	if errs := applyTestimonialForm(r, &t); len(errs) > 0 {
		a.renderForm(w, r, testimonialsResource, "/admin/testimonials/new", true, testimonialFields(&t), errs)
		return
	}
	if _, err := a.testimonials.Create(&t); err != nil {
		slog.Error("create testimonial failed", "error", err)
		a.renderForm(w, r, testimonialsResource, "/admin/testimonials/new", true, testimonialFields(&t),
			[]string{"Failed to save the testimonial."})
		return
	}
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/testimonials/", http.StatusSeeOther)
}

func (a *Admin) TestimonialEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	t, err := a.testimonials.FindByID(id)
	if err != nil || t == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	a.renderForm(w, r, testimonialsResource, "/admin/testimonials/"+id.String(), false, testimonialFields(t), nil)
}

func (a *Admin) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	t, err := a.testimonials.FindByID(id)
	if err != nil || t == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if errs := applyTestimonialForm(r, t); len(errs) > 0 {
		a.renderForm(w, r, testimonialsResource, "/admin/testimonials/"+id.String(), false, testimonialFields(t), errs)
		return
	}
	if err := a.testimonials.Update(t); err != nil {
		slog.Error("update testimonial failed", "error", err, "id", id)
		a.renderForm(w, r, testimonialsResource, "/admin/testimonials/"+id.String(), false, testimonialFields(t),
			[]string{"Failed to save the testimonial."})
		return
	}
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/testimonials/", http.StatusSeeOther)
}

func (a *Admin) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := a.testimonials.Delete(id); err != nil {
		slog.Error("delete testimonial failed", "error", err, "id", id)
	} else {
		a.invalidatePages(r)
	}
	http.Redirect(w, r, "/admin/testimonials/", http.StatusSeeOther)
}

// --- Technologies ---

func (a *Admin) TechnologiesList(w http.ResponseWriter, r *http.Request) {
	technologies, err := a.technologies.List()
	if err != nil {
		slog.Error("list technologies failed", "error", err)
	}

	rows := make([]listRow, 0, len(technologies))
	for _, t := range technologies {
		rows = append(rows, listRow{
			ID: t.ID.String(),
			Cells: []listCell{
				textCell(t.Name),
				textCell(t.Category.Label()),
				textCell(strconv.Itoa(t.Proficiency) + "%"),
				textCell(strconv.Itoa(t.SortOrder)),
				boolCell(t.IsActive),
			},
		})
	}
	a.renderList(w, r, technologiesResource, []string{"Name", "Category", "Proficiency", "Order", "Active"}, rows)
}

func technologyFields(t *models.Technology) []formField {
	opts := make([]formOption, 0, len(models.TechCategories))
	for _, cat := range models.TechCategories {
		opts = append(opts, formOption{
			Value: string(cat), Label: cat.Label(), Selected: cat == t.Category,
		})
	}
	return []formField{
		{Name: "name", Label: "Name", Widget: "text", Value: t.Name, Required: true},
		{Name: "icon", Label: "Icon", Widget: "text", Value: t.Icon, Help: "FontAwesome class, e.g. \"fab fa-react\"."},
		{Name: "category", Label: "Category", Widget: "select", Options: opts, Required: true},
		{Name: "proficiency", Label: "Proficiency (%)", Widget: "number", Value: strconv.Itoa(t.Proficiency), Min: "0", Max: "100"},
		{Name: "sort_order", Label: "Sort Order", Widget: "number", Value: strconv.Itoa(t.SortOrder)},
		{Name: "is_active", Label: "Active", Widget: "checkbox", Checked: t.IsActive},
	}
}

func applyTechnologyForm(r *http.Request, t *models.Technology) []string {
	t.Name = r.PostFormValue("name")
	t.Icon = r.PostFormValue("icon")
	t.Category = models.TechCategory(r.PostFormValue("category"))
	t.Proficiency = formInt(r, "proficiency", 0)
	t.SortOrder = formInt(r, "sort_order", 0)
	t.IsActive = formBool(r, "is_active")
	return validateTechnology(t)
}

func (a *Admin) TechnologyNew(w http.ResponseWriter, r *http.Request) {
	a.renderForm(w, r, technologiesResource, "/admin/technologies/new", true,
		technologyFields(&models.Technology{IsActive: true, Category: models.TechCategoryBackend}), nil)
}

func (a *Admin) TechnologyCreate(w http.ResponseWriter, r *http.Request) {
	var t models.Technology
	if errs := applyTechnologyForm(r, &t); len(errs) > 0 {
		a.renderForm(w, r, technologiesResource, "/admin/technologies/new", true, technologyFields(&t), errs)
		return
	}
	if _, err := a.technologies.Create(&t); err != nil {
		slog.Error("create technology failed", "error", err)
		a.renderForm(w, r, technologiesResource, "/admin/technologies/new", true, technologyFields(&t),
			[]string{"Failed to save the technology."})
		return
	}
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/technologies/", http.StatusSeeOther)
}

func (a *Admin) TechnologyEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	t, err := a.technologies.FindByID(id)
	if err != nil || t == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	a.renderForm(w, r, technologiesResource, "/admin/technologies/"+id.String(), false, technologyFields(t), nil)
}

func (a *Admin) TechnologyUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	t, err := a.technologies.FindByID(id)
	if err != nil || t == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if errs := applyTechnologyForm(r, t); len(errs) > 0 {
		a.renderForm(w, r, technologiesResource, "/admin/technologies/"+id.String(), false, technologyFields(t), errs)
		return
	}
	if err := a.technologies.Update(t); err != nil {
		slog.Error("update technology failed", "error", err, "id", id)
		a.renderForm(w, r, technologiesResource, "/admin/technologies/"+id.String(), false, technologyFields(t),
			[]string{"Failed to save the technology."})
		return
	}
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/technologies/", http.StatusSeeOther)
}

func (a *Admin) TechnologyDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := a.technologies.Delete(id); err != nil {
		slog.Error("delete technology failed", "error", err, "id", id)
	} else {
		a.invalidatePages(r)
	}
	http.Redirect(w, r, "/admin/technologies/", http.StatusSeeOther)
}
