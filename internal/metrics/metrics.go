package metrics

const Namespace = "lifemap"
