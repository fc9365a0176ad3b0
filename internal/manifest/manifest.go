// Package manifest builds the declarative Kubernetes resources the
// orchestrator consumes to run the greeting service: a Deployment carrying the
// desired replica count and a LoadBalancer Service exposing port 80 to the
// container port. The package produces data for the control plane; it holds no
// reconciliation logic of its own.
package manifest

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/yaml"
)

// Defaults match the checked-in manifests under deploy/.
const (
	DefaultName          = "greetsvc"
	DefaultNamespace     = "default"
	DefaultImage         = "greetsvc:latest"
	DefaultReplicas      = 2
	DefaultContainerPort = 3000
	DefaultServicePort   = 80
)

// Spec is the normalized deployment configuration. Zero fields are filled in
// from the defaults above before building.
type Spec struct {
	// Name names both resources and the selector label value.
	Name string
	// Namespace the resources are created in.
	Namespace string
	// Image is the container image reference, registry included.
	Image string
	// Replicas is the desired replica count, owned by the orchestrator's
	// declarative state once applied.
	Replicas int32
	// ContainerPort is the port the service process listens on.
	ContainerPort int32
	// ServicePort is the externally reachable load-balanced port.
	ServicePort int32
}

func (s Spec) withDefaults() Spec {
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.Namespace == "" {
		s.Namespace = DefaultNamespace
	}
	if s.Image == "" {
		s.Image = DefaultImage
	}
	if s.Replicas == 0 {
		s.Replicas = DefaultReplicas
	}
	if s.ContainerPort == 0 {
		s.ContainerPort = DefaultContainerPort
	}
	if s.ServicePort == 0 {
		s.ServicePort = DefaultServicePort
	}
	return s
}

// Labels returns the selector labels shared by the Deployment's pod template
// and the Service. The Service routes to pods purely by this label match.
func Labels(name string) map[string]string {
	return map[string]string{
		"app": name,
	}
}

// BuildDeployment constructs the desired Deployment for the greeting service.
func BuildDeployment(s Spec) *appsv1.Deployment {
	s = s.withDefaults()
	labels := Labels(s.Name)

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      s.Name,
			Namespace: s.Namespace,
			Labels:    labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &s.Replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: labels,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labels,
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  s.Name,
							Image: s.Image,
							Ports: []corev1.ContainerPort{
								{
									Name:          "http",
									ContainerPort: s.ContainerPort,
									Protocol:      corev1.ProtocolTCP,
								},
							},
							LivenessProbe: &corev1.Probe{
								ProbeHandler: corev1.ProbeHandler{
									HTTPGet: &corev1.HTTPGetAction{
										Path: "/healthz",
										Port: intstr.FromInt(int(s.ContainerPort)),
									},
								},
							},
							ReadinessProbe: &corev1.Probe{
								ProbeHandler: corev1.ProbeHandler{
									HTTPGet: &corev1.HTTPGetAction{
										Path: "/health",
										Port: intstr.FromInt(int(s.ContainerPort)),
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

// BuildService constructs the LoadBalancer Service mapping the external port
// to the container port, selecting pods by the shared app label.
func BuildService(s Spec) *corev1.Service {
	s = s.withDefaults()

	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      s.Name,
			Namespace: s.Namespace,
			Labels:    Labels(s.Name),
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeLoadBalancer,
			Selector: Labels(s.Name),
			Ports: []corev1.ServicePort{
				{
					Name:       "http",
					Port:       s.ServicePort,
					TargetPort: intstr.FromInt(int(s.ContainerPort)),
					Protocol:   corev1.ProtocolTCP,
				},
			},
		},
	}
}

// RenderYAML marshals a built resource to YAML suitable for kubectl apply.
func RenderYAML(obj any) ([]byte, error) {
	return yaml.Marshal(obj)
}
